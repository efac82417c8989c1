package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-service/internal/handler"
	mid "catalog-service/internal/middleware"
	"catalog-service/internal/notify"
	"catalog-service/internal/repository"
	"catalog-service/internal/service"
	"catalog-service/internal/upload"
	"catalog-service/pkg/config"
	"catalog-service/pkg/database"
	"catalog-service/pkg/jwtutil"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file. Missing files are fine; production environments set
	// real environment variables instead.
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting catalog-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	db, err := database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Repositories over the shared connection pool
	productRepo := repository.NewGormProductRepository(db)
	inquiryRepo := repository.NewGormInquiryRepository(db)

	// Notification dispatcher: inquiry writes complete first, mail delivery
	// happens on its own goroutine
	mailer := notify.NewMailer(&appConfig.SMTP)
	dispatcher := notify.NewDispatcher(mailer, 64, log)
	dispatcher.Start()

	// Services
	productSvc := service.NewProductService(productRepo, log)
	inquirySvc := service.NewInquiryService(inquiryRepo, productRepo, dispatcher, log)

	// Handlers
	productHandler := handler.NewProductHandler(productSvc)
	inquiryHandler := handler.NewInquiryHandler(inquirySvc)
	authHandler := handler.NewAuthHandler(appConfig.Admin)
	uploadHandler := handler.NewUploadHandler(upload.NewIngestor(&appConfig.Upload, log))

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	api := e.Group("/api")
	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api, mid.AuthMiddleware)
	inquiryHandler.RegisterRoutes(api, mid.AuthMiddleware)
	uploadHandler.RegisterRoutes(api, mid.AuthMiddleware)

	// Uploaded images are served as static assets
	e.Static(appConfig.Upload.PublicPrefix, appConfig.Upload.Dir)

	// Start server
	go func() {
		if err := e.Start(":" + appConfig.Server.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal, then drain in order: HTTP first, then the
	// notification queue, then the database pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	dispatcher.Stop()
	if err := database.Close(db); err != nil {
		log.Error("Database close failed", zap.Error(err))
	}
	log.Info("Shutdown complete")
}
