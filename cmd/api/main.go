package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"bookcatalog/docs"
	"bookcatalog/internal/config"
	"bookcatalog/internal/database"
	handlers "bookcatalog/internal/http/handler"
	"bookcatalog/internal/http/middleware"
	"bookcatalog/internal/logger"
	"bookcatalog/internal/otel"
	"bookcatalog/internal/repository/mongodb"
	"bookcatalog/internal/service"
)

// @title Book Catalog API
// @version 1.0
// @description Book catalog backed by a MongoDB collection.
// @BasePath /
func main() {
	// .env is auto-loaded if present
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	shutdownTracing, err := otel.Init(context.Background(), "bookcatalog", log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	// Driver commands are logged and traced through one monitor
	monitor := logger.NewCommandMonitor(log.Logger, otelmongo.NewMonitor())
	store, err := database.NewMongo(cfg.Mongo, database.WithMonitor(monitor))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to document store")
	}

	bookRepo := mongodb.NewBookMongo(store.Books(), log.Logger)
	catalogSvc := service.NewCatalogService(bookRepo, log.Logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID(log.Logger))
	app.Use(middleware.Logger(log.Logger))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, store, catalogSvc)

	// Swagger UI with dynamic host and scheme; APP_HOST is the fallback host
	app.Get("/swagger/*", handlers.Swagger(docs.SwaggerInfo, cfg.AppHost))

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("database", cfg.Mongo.Database).Str("collection", cfg.Mongo.Collection).Msg("starting server")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := store.Close(ctx); err != nil {
		log.Error().Err(err).Msg("store disconnect")
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
	log.Info().Msg("server stopped")
}
