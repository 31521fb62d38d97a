package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"coachapi/internal/config"
	"coachapi/internal/database"
	"coachapi/internal/database/migration"
	handlers "coachapi/internal/http/handler"
	"coachapi/internal/http/middleware"
	"coachapi/internal/otel"
	"coachapi/internal/repository/postgres"
	"coachapi/internal/service"
	"coachapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Initialize tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Apply schema if the sentinel table is missing
	if err := migration.EnsureMigrated(context.Background(), db, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize the PDF file store: local flat directory by default,
	// S3-compatible object storage when configured
	var fileStore storage.Storage
	switch cfg.Storage.Backend {
	case "minio":
		fileStore, err = storage.NewMinIO(cfg.Storage.MinIO)
	default:
		fileStore, err = storage.NewLocal(cfg.Storage.UploadDir)
	}
	if err != nil {
		log.Fatalf("failed to initialize file storage: %v", err)
	}

	// Initialize repositories and services
	pdfSvc := service.NewPDFService(fileStore, postgres.NewPDFPostgres(db))
	contactSvc := service.NewContactService(postgres.NewContactPostgres(db))
	schedSvc := service.NewScheduleService(postgres.NewSchedulePostgres(db))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// Cross-origin allow-list, permissive by default
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORS.AllowOrigins}))
	// Trace spans per request
	app.Use(otelfiber.Middleware())

	// Request counter + scrape endpoint
	reg := prometheus.NewRegistry()
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(prom.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services; admin routes share one guard
	adminGuard := middleware.AdminAuth(cfg.Admin.Password)
	handlers.RegisterRoutes(app, db, pdfSvc, contactSvc, schedSvc, adminGuard)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
