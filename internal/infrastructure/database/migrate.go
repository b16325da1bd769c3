package database

import (
	"embed"
	"errors"
	"fmt"
	"net/url"

	"maareeye-hospital/config"
	"maareeye-hospital/internal/domain/entity"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate brings the schema up to date according to cfg.Migrate.
func Migrate(db *gorm.DB, cfg config.DBConfig) error {
	switch cfg.Migrate {
	case config.MigrateNone:
		logrus.Info("Schema migration disabled")
		return nil
	case config.MigrateAuto:
		return AutoMigrate(db)
	default:
		return MigrateUp(cfg)
	}
}

// AutoMigrate creates the tables from the gorm entities. Used for SQLite and
// in tests; PostgreSQL deployments use the versioned SQL migrations.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Hospital{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Appointment{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logrus.Info("Schema auto-migrated")
	return nil
}

// MigrateUp applies the embedded SQL migrations through golang-migrate. It
// opens its own connection so closing the migrator leaves the pool intact.
func MigrateUp(cfg config.DBConfig) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	databaseURL, err := migrateURL(PostgresDSN(cfg))
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logrus.Warnf("Failed to close migrator: source=%v database=%v", srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Schema migrations applied")

	return nil
}

// migrateURL rewrites a postgres:// DSN to the pgx5:// scheme registered by
// the golang-migrate pgx/v5 driver.
func migrateURL(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql", "pgx5":
		u.Scheme = "pgx5"
	default:
		return "", fmt.Errorf("unsupported database url scheme %q", u.Scheme)
	}
	return u.String(), nil
}
