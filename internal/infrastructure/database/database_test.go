package database

import (
	"testing"

	"maareeye-hospital/config"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPostgresDSN(t *testing.T) {
	Convey("Given individual connection settings", t, func() {
		cfg := config.DBConfig{
			Host: "db", Port: "5432", User: "postgres", Password: "p@ss word",
			Name: "maareeye_hospital", SSLMode: "disable",
		}

		Convey("Then a postgres URL is built with escaped credentials", func() {
			So(PostgresDSN(cfg), ShouldEqual,
				"postgres://postgres:p%40ss%20word@db:5432/maareeye_hospital?TimeZone=UTC&sslmode=disable")
		})

		Convey("Then DATABASE_URL wins when set", func() {
			cfg.URL = "postgres://u:p@elsewhere/db"
			So(PostgresDSN(cfg), ShouldEqual, "postgres://u:p@elsewhere/db")
		})
	})
}

func TestMigrateURL(t *testing.T) {
	Convey("migrateURL switches to the pgx5 scheme", t, func() {
		got, err := migrateURL("postgres://u:p@db:5432/app?sslmode=disable")
		So(err, ShouldBeNil)
		So(got, ShouldEqual, "pgx5://u:p@db:5432/app?sslmode=disable")

		got, err = migrateURL("postgresql://db/app")
		So(err, ShouldBeNil)
		So(got, ShouldStartWith, "pgx5://")
	})

	Convey("migrateURL rejects other schemes", t, func() {
		_, err := migrateURL("mysql://db/app")
		So(err, ShouldNotBeNil)
	})
}

func TestSQLiteDSN(t *testing.T) {
	Convey("sqliteDSN always enables foreign keys", t, func() {
		So(sqliteDSN(":memory:"), ShouldEqual, ":memory:?_pragma=foreign_keys(1)")
		So(sqliteDSN("file.db?cache=shared"), ShouldEqual, "file.db?cache=shared&_pragma=foreign_keys(1)")
	})
}

func TestMigrateModes(t *testing.T) {
	Convey("Given an in-memory SQLite database", t, func() {
		db, err := NewSQLiteConnection(":memory:", false)
		So(err, ShouldBeNil)
		Reset(func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		})

		Convey("When migrating in auto mode", func() {
			So(Migrate(db, config.DBConfig{Migrate: config.MigrateAuto}), ShouldBeNil)

			Convey("Then the four tables exist", func() {
				for _, table := range []string{"hospitals", "doctors", "patients", "appointments"} {
					So(db.Migrator().HasTable(table), ShouldBeTrue)
				}
			})
		})

		Convey("When migration is disabled", func() {
			So(Migrate(db, config.DBConfig{Migrate: config.MigrateNone}), ShouldBeNil)

			Convey("Then no table is created", func() {
				So(db.Migrator().HasTable("hospitals"), ShouldBeFalse)
			})
		})
	})
}
