package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docvault/internal/config"
	handlers "docvault/internal/http/handler"
	"docvault/internal/http/middleware"
	"docvault/internal/otel"
	"docvault/internal/service"
	"docvault/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if
	// present). Missing required values are fatal before anything dials out.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize the S3-compatible object storage client. This also
	// verifies the configured bucket exists.
	objStore, err := storage.NewMinIO(cfg.Store)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	docSvc := service.NewDocumentService(objStore)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, docSvc)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
