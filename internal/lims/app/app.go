package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/blob"
	httpapi "github.com/aussiebroadwan/ancestrybio/internal/lims/http"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/metrics"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store/drivers/postgres"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store/drivers/sqlite"
	"github.com/aussiebroadwan/ancestrybio/pkg/cryptox"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the LIMS service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	blob    blob.Store
	keys    *SigningKeys
	metrics *metrics.Metrics

	// Services
	authService         *service.AuthService
	bootstrapService    *service.BootstrapService
	userService         *service.UserService
	enzymeService       *service.EnzymeService
	organismService     *service.OrganismService
	fileService         *service.FileService
	batchService        *service.BatchService
	statsService        *service.StatsService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "lims",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:     cfg,
		logger:  NewLogger(cfg),
		metrics: metrics.New(),
	}
	ctx := context.Background()

	httpx.LoadRateLimitsFromEnv()

	// Load pepper for password hashing
	if err := cryptox.LoadPepper(cfg.PepperFile); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	db, err := OpenStore(ctx, cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	objects, err := OpenBlob(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.blob = objects
	app.logger.Info("object store ready", "driver", objects.Driver())

	keys, err := InitSigningKeys(cfg, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// OpenStore connects to the configured record store and applies migrations.
func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger) (store.Store, error) {
	var (
		db interface {
			store.Store
			ApplyMigrations() error
		}
		err error
	)

	switch cfg.DBDriver {
	case "", "sqlite":
		host := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", cfg.DatabaseFile)
		db, err = sqlite.NewStore(host)
	case "postgres":
		db, err = postgres.NewStore(ctx, cfg.DatabaseURL, postgres.PoolConfig{})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	logger.Info("database migrations applied successfully", "driver", cfg.DBDriver)
	return db, nil
}

// OpenBlob opens the configured object store.
func OpenBlob(ctx context.Context, cfg Config) (blob.Store, error) {
	objects, err := blob.Open(ctx, blob.Config{
		Driver: blob.Driver(cfg.BlobDriver),
		Dir:    cfg.BlobDir,
		S3: blob.S3Config{
			Region:    cfg.BlobS3Region,
			Bucket:    cfg.BlobS3Bucket,
			Endpoint:  cfg.BlobS3Endpoint,
			PathStyle: cfg.BlobS3PathStyle,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open object store: %w", err)
	}
	return objects, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("lims service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down lims service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("lims service stopped")
	return nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   app.keys.Signer,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.TokenTTL,
	}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}
	app.userService = &service.UserService{Store: app.db}
	app.enzymeService = &service.EnzymeService{Store: app.db}
	app.organismService = &service.OrganismService{
		Store:          app.db,
		Blob:           app.blob,
		Metrics:        app.metrics,
		MaxUploadBytes: app.cfg.MaxUploadBytes(),
	}
	app.fileService = &service.FileService{Blob: app.blob}
	app.batchService = &service.BatchService{Store: app.db, Metrics: app.metrics}
	app.statsService = &service.StatsService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.metrics,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.blob,
		app.metrics,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.BootstrapService = app.bootstrapService
	router.UserService = app.userService
	router.EnzymeService = app.enzymeService
	router.OrganismService = app.organismService
	router.FileService = app.fileService
	router.BatchService = app.batchService
	router.StatsService = app.statsService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
