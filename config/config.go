package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	MigrateSQL  = "sql"
	MigrateAuto = "auto"
	MigrateNone = "none"

	// DefaultSecretKey is only meant for local development.
	DefaultSecretKey = "insecure-dev-secret-key"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	HTTP    HTTPConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Port      string
	Env       string
	Debug     bool
	LogLevel  string
	SecretKey string
}

type DBConfig struct {
	Driver          string
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	Migrate         string
	Seed            bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type HTTPConfig struct {
	AllowedHosts       []string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutdownTimeout    time.Duration
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
	Subsystem string
	// Buckets are latency histogram upper bounds in seconds; empty keeps the
	// Prometheus defaults.
	Buckets           []float64
	RuntimeCollectors bool
}

// LoadConfig reads .env from the working directory when present and lets the
// process environment override it.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// APP_PORT wins over the platform-provided PORT.
	if err := v.BindEnv("APP_PORT", "APP_PORT", "PORT"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	debug := v.GetBool("DEBUG")
	logLevel := v.GetString("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
		if debug {
			logLevel = "debug"
		}
	}

	config := &Config{
		App: AppConfig{
			Port:      v.GetString("APP_PORT"),
			Env:       v.GetString("APP_ENV"),
			Debug:     debug,
			LogLevel:  logLevel,
			SecretKey: v.GetString("SECRET_KEY"),
		},
		DB: DBConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			URL:             v.GetString("DATABASE_URL"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			Migrate:         strings.ToLower(v.GetString("DB_MIGRATE")),
			Seed:            v.GetBool("DB_SEED"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		HTTP: HTTPConfig{
			AllowedHosts:       splitList(v.GetString("ALLOWED_HOSTS")),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			ReadTimeout:        v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout:       v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:        v.GetDuration("HTTP_IDLE_TIMEOUT"),
			ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Metrics: MetricsConfig{
			Enabled:           v.GetBool("METRICS_ENABLED"),
			Namespace:         v.GetString("METRICS_NAMESPACE"),
			Subsystem:         v.GetString("METRICS_SUBSYSTEM"),
			RuntimeCollectors: v.GetBool("METRICS_RUNTIME_COLLECTORS"),
		},
	}

	buckets, err := parseBuckets(v.GetString("METRICS_BUCKETS"))
	if err != nil {
		return nil, err
	}
	config.Metrics.Buckets = buckets

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DEBUG", false)
	v.SetDefault("SECRET_KEY", DefaultSecretKey)

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "maareeye_hospital")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MIGRATE", MigrateSQL)
	v.SetDefault("DB_SEED", false)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)

	v.SetDefault("ALLOWED_HOSTS", "*")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("HTTP_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_NAMESPACE", "maareeye")
	v.SetDefault("METRICS_SUBSYSTEM", "api")
	v.SetDefault("METRICS_BUCKETS", "")
	v.SetDefault("METRICS_RUNTIME_COLLECTORS", false)
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return errors.New("DB_DRIVER must be one of: postgres, sqlite")
	}

	switch c.DB.Migrate {
	case MigrateSQL, MigrateAuto, MigrateNone:
	default:
		return errors.New("DB_MIGRATE must be one of: sql, auto, none")
	}

	if c.DB.Driver == DriverSQLite && c.DB.Migrate == MigrateSQL {
		// The embedded SQL migrations are written for PostgreSQL.
		c.DB.Migrate = MigrateAuto
	}

	if c.App.Port == "" {
		return errors.New("APP_PORT must not be empty")
	}

	return nil
}

// splitList parses a comma separated env value, dropping empty items.
func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parseBuckets reads METRICS_BUCKETS, e.g. "0.05,0.1,0.5,1". Bounds must be
// strictly increasing.
func parseBuckets(s string) ([]float64, error) {
	items := splitList(s)
	if len(items) == 0 {
		return nil, nil
	}

	buckets := make([]float64, 0, len(items))
	for _, item := range items {
		bound, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("METRICS_BUCKETS: invalid bound %q", item)
		}
		if n := len(buckets); n > 0 && bound <= buckets[n-1] {
			return nil, fmt.Errorf("METRICS_BUCKETS: bounds must increase, got %v after %v", bound, buckets[n-1])
		}
		buckets = append(buckets, bound)
	}
	return buckets, nil
}
