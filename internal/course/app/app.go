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

	httpapi "github.com/gtrskylin3/CourseWebsite/internal/course/http"
	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/drivers/postgres"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/drivers/sqlite"
	"github.com/gtrskylin3/CourseWebsite/internal/course/telemetry"
	"github.com/gtrskylin3/CourseWebsite/pkg/cryptox"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"

	serviceName = "course-service"
)

// Application encapsulates the course service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager
	telemetry  *telemetry.Telemetry

	// Services
	accountService      *service.AccountService
	catalogService      *service.CatalogService
	progressService     *service.ProgressService
	resolver            *service.Resolver
	refresher           *service.Refresher
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := context.Background()

	tel, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    serviceName,
		Version:        BuildVersion,
		Environment:    cfg.Env,
		TracesExporter: cfg.TracesExporter,
		MetricsEnabled: cfg.MetricsEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	app.telemetry = tel

	if err := app.initDatabase(ctx); err != nil {
		app.release(ctx)
		return nil, err
	}

	keyManager, err := InitAuthKeys(app.cfg, app.logger)
	if err != nil {
		app.release(ctx)
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keyManager = keyManager

	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		app.release(ctx)
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	app.initServices(pepper)
	if err := app.initHTTP(); err != nil {
		app.release(ctx)
		return nil, err
	}

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("course service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"transport", app.cfg.Transport,
		"database", app.cfg.DatabaseDriver,
	)

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
	app.logger.Info("shutting down course service...")

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

	if err := app.telemetry.Shutdown(ctx); err != nil {
		app.logger.Error("error flushing telemetry", "error", err)
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("course service stopped")
	return nil
}

// release undoes a partial New: the database, when open, and the
// telemetry providers with their exporter goroutines.
func (app *Application) release(ctx context.Context) {
	if app.db != nil {
		_ = app.db.Close()
	}
	if err := app.telemetry.Shutdown(ctx); err != nil {
		app.logger.Error("error flushing telemetry", "error", err)
	}
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// OpenStore connects to the database named by cfg without migrating it.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	if cfg.DatabaseDriver == DriverPostgres {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := sqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// initServices initializes all business logic services
func (app *Application) initServices(pepper string) {
	codec := jwtx.NewCodec(app.keyManager, app.cfg.AccessTokenTTL)

	issuer := &service.TokenIssuer{
		Codec:      codec,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTokenTTL,
		RefreshTTL: app.cfg.RefreshTokenTTL,
		Metrics:    app.telemetry.Auth,
	}

	app.resolver = &service.Resolver{
		Codec:   codec,
		Store:   app.db,
		Metrics: app.telemetry.Auth,
	}
	app.refresher = &service.Refresher{
		Resolver: app.resolver,
		Issuer:   issuer,
		Store:    app.db,
		Rotation: app.cfg.RefreshRotation,
	}
	app.accountService = &service.AccountService{
		Store:  app.db,
		Hasher: cryptox.NewHasher(pepper),
		Issuer: issuer,
	}
	app.catalogService = &service.CatalogService{Store: app.db}
	app.progressService = &service.ProgressService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() error {
	transport, err := httpapi.NewTransport(app.cfg.Transport, httpx.CookieOptions{
		Secure: app.cfg.CookieSecure,
	})
	if err != nil {
		return err
	}
	if transport.Mode == httpapi.TransportCookie && !app.cfg.CookieSecure {
		app.logger.Warn("token cookies are sent without the Secure attribute")
	}

	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		transport,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.Resolver = app.resolver
	router.Refresher = app.refresher
	router.Accounts = app.accountService
	router.Catalog = app.catalogService
	router.Progress = app.progressService
	router.Metrics = app.telemetry.MetricsHandler()
	router.Instrument(app.telemetry.TracerProvider, app.telemetry.MeterProviderOrNoop())
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
