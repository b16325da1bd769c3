package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maareeye-hospital/config"
	deliveryHttp "maareeye-hospital/internal/delivery/http"
	"maareeye-hospital/internal/delivery/http/handler"
	"maareeye-hospital/internal/delivery/http/middleware"
	"maareeye-hospital/internal/infrastructure/database"
	"maareeye-hospital/internal/repository"
	"maareeye-hospital/internal/service"
	"maareeye-hospital/internal/usecase"
	"maareeye-hospital/pkg/metrics"
	"maareeye-hospital/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const databasePingTimeout = 5 * time.Second

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized.
// An unreachable database is not fatal: the server still starts so the
// health endpoints can report it.
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	if err := setupLogger(cfg.App.LogLevel); err != nil {
		return nil, err
	}
	logrus.Info("Configuration loaded successfully")

	if cfg.App.SecretKey == config.DefaultSecretKey && !cfg.App.Debug {
		logrus.Warn("SECRET_KEY is not set, using the development default")
	}

	// Initialize database
	db, err := database.NewConnection(cfg.DB, cfg.App.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := pingDatabase(db); err != nil {
		logrus.Errorf("Database is not reachable, skipping migrations: %v", err)
	} else {
		logrus.Info("Database connected successfully")
		prepareDatabase(cfg, db)
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) error {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	logrus.SetLevel(lvl)
	return nil
}

func pingDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), databasePingTimeout)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

// prepareDatabase migrates the schema and, when enabled, seeds sample data.
// Failures are logged; requests will surface them through /api/db-test/.
func prepareDatabase(cfg *config.Config, db *gorm.DB) {
	if err := database.Migrate(db, cfg.DB); err != nil {
		logrus.Errorf("Failed to migrate database: %v", err)
		return
	}

	if !cfg.DB.Seed {
		return
	}

	seedService := service.NewSeedService(db, logrus.StandardLogger(), repository.NewHospitalRepository(db))
	if _, err := seedService.Seed(context.Background()); err != nil {
		logrus.Errorf("Failed to seed database: %v", err)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	hospitalRepo := repository.NewHospitalRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	hospitalUsecase := usecase.NewHospitalUsecase(log, hospitalRepo)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, hospitalRepo)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, hospitalRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, doctorRepo, patientRepo, hospitalRepo)
	healthUsecase := usecase.NewHealthUsecase(db)

	// Initialize handlers
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	healthHandler := handler.NewHealthHandler(log, healthUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.HTTP.CORSAllowedOrigins)
	hostMiddleware := middleware.NewHostMiddleware(cfg.HTTP.AllowedHosts)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	var metricsManager *metrics.Manager
	if cfg.Metrics.Enabled {
		metricsManager = newMetricsManager(cfg.Metrics)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(
		hospitalHandler,
		doctorHandler,
		patientHandler,
		appointmentHandler,
		healthHandler,
		corsMiddleware,
		hostMiddleware,
		loggingMiddleware,
		metricsManager,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:         serverAddr,
		Handler:      httpRouter,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
}

// newMetricsManager builds the Prometheus manager from METRICS_* settings.
func newMetricsManager(cfg config.MetricsConfig) *metrics.Manager {
	opts := []metrics.Option{
		metrics.WithNamespace(cfg.Namespace),
		metrics.WithSubsystem(cfg.Subsystem),
		metrics.WithHistogramBuckets(cfg.Buckets),
	}
	if cfg.RuntimeCollectors {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, metrics.WithRegistry(registry))
	}
	return metrics.NewManager(opts...)
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.HTTP.ShutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database connection pool
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
