package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Kavitha8494/ca/internal/config"
	"github.com/Kavitha8494/ca/internal/database"
	"github.com/Kavitha8494/ca/internal/database/migration"
	handlers "github.com/Kavitha8494/ca/internal/http/handler"
	"github.com/Kavitha8494/ca/internal/http/middleware"
	"github.com/Kavitha8494/ca/internal/otel"
	"github.com/Kavitha8494/ca/internal/repository/postgres"
	"github.com/Kavitha8494/ca/internal/service"
	"github.com/Kavitha8494/ca/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize OpenTelemetry tracing (no-op when the exporter is unreachable)
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("failed to shut down tracing: %v", err)
		}
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.Local, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Resume storage: local disk by default, any S3-compatible store when configured
	store, err := newStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize resume storage: %v", err)
	}

	// Initialize repositories and services
	contactRepo := postgres.NewContactPostgres(db)
	careerRepo := postgres.NewCareerPostgres(db)
	queryRepo := postgres.NewQueryPostgres(db)
	newsRepo := postgres.NewNewsPostgres(db)
	postRepo := postgres.NewPostPostgres(db)
	adminRepo := postgres.NewAdminPostgres(db)

	contactSvc := service.NewContactService(contactRepo)
	careerSvc := service.NewCareerService(careerRepo, store)
	querySvc := service.NewQueryService(queryRepo)
	newsSvc := service.NewNewsService(newsRepo)
	postSvc := service.NewPostService(postRepo)
	authSvc := service.NewAuthService(adminRepo, cfg.Auth)

	// Background sweep for resumes whose submission never completed
	sweeper := service.NewSweeper(store, careerRepo, cfg.Sweep)
	go sweeper.Run(ctx)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMW.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, handlers.Deps{
		Contacts: contactSvc,
		Careers:  careerSvc,
		Queries:  querySvc,
		News:     newsSvc,
		Posts:    postSvc,
		Auth:     authSvc,
		AuthCfg:  cfg.Auth,
		Gatherer: registry,
	})

	addr := ":" + cfg.Port

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("failed to shut down server: %v", err)
	}
}

func newStorage(cfg config.StorageConfig) (storage.Storage, error) {
	if cfg.Backend == "s3" {
		return storage.NewS3(cfg)
	}
	return storage.NewLocal(cfg.LocalDir)
}
