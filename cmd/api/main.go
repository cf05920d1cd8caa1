package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"spouseshowcase/internal/config"
	"spouseshowcase/internal/database"
	"spouseshowcase/internal/database/migration"
	handlers "spouseshowcase/internal/http/handler"
	"spouseshowcase/internal/http/middleware"
	"spouseshowcase/internal/otel"
	"spouseshowcase/internal/repository"
	"spouseshowcase/internal/repository/memory"
	"spouseshowcase/internal/repository/postgres"
	"spouseshowcase/internal/service"
	"spouseshowcase/internal/storage"
	"spouseshowcase/internal/web"
)

// @title Spouse Showcase API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error("tracing_shutdown_failed", slog.String("error", err.Error()))
		}
	}()

	var (
		repo repository.SpouseRepository
		db   *sql.DB
	)
	switch cfg.StorageDriver {
	case config.DriverMemory:
		repo = memory.NewSpouseMemory()
	default:
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, logger, database.Host(cfg.Database.URL)); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		repo = postgres.NewSpousePostgres(db)
	}

	// Image archive is optional; submissions never depend on it.
	var archive storage.Storage
	if cfg.MinIO.Enabled() {
		archive, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	svc := service.NewSpouseService(repo, archive, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.BodyLimitBytes(),
		ErrorHandler:          handlers.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(metrics.Handler())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	rc := handlers.RouteConfig{
		Options:  handlers.Options{Development: cfg.IsDevelopment(), Logger: logger},
		Gatherer: reg,
	}
	// A nil *sql.DB must not become a non-nil Pinger.
	if db != nil {
		rc.DB = db
	}
	handlers.RegisterRoutes(app, svc, rc)

	if err := web.Register(app, web.Config{Production: !cfg.IsDevelopment()}); err != nil {
		log.Fatalf("failed to load web client: %v", err)
	}

	handlers.RegisterSwagger(app)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_started",
			slog.String("addr", addr),
			slog.String("env", cfg.Env),
			slog.String("storage_driver", cfg.StorageDriver),
			slog.Bool("archive_enabled", archive != nil),
		)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("failed to start server: %v", err)
		}
	case <-ctx.Done():
		logger.Info("server_stopping")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			logger.Error("server_shutdown_failed", slog.String("error", err.Error()))
		}
	}
}
