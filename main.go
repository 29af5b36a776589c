package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"varahicare/config"
	"varahicare/database/kv"
	"varahicare/handlers"
	"varahicare/middleware"
	"varahicare/routes"
	"varahicare/services/bookingstore"
	"varahicare/services/diagnostic"
	"varahicare/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Persistence backend for the booking collection.
	var store kv.Store
	switch config.AppConfig.StorageBackend {
	case "redis":
		redisStore, err := kv.NewRedisStore(
			config.AppConfig.RedisAddr,
			config.AppConfig.RedisPassword,
			config.AppConfig.RedisDB,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize redis storage: %v", err)
		}
		store = redisStore
	default:
		fileStore, err := kv.NewFileStore(config.AppConfig.DataDir)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize file storage: %v", err)
		}
		store = fileStore
	}

	bookings := bookingstore.NewDefaultBookingStore(store, config.AppConfig.BookingsKey, logger)
	if err := bookings.Load(context.Background()); err != nil {
		logger.Sugar().Warnf("main: booking store loaded empty: %v", err)
	}

	geminiClient, err := diagnostic.NewGeminiClient(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	diagnosticSvc := diagnostic.NewDefaultDiagnosticService(geminiClient, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	bookingHandler := handlers.NewBookingHandler(bookings, logger)
	adminHandler := handlers.NewAdminHandler(bookings, logger)
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticSvc, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetServicesHandler:    handlers.GetServicesHandler,
		GetWorkshopHandler:    handlers.GetWorkshopHandler,
		AnalyzeProblemHandler: diagnosticHandler.AnalyzeProblem,
		CreateBookingHandler:  bookingHandler.CreateBooking,

		ListBookingsHandler:   adminHandler.ListBookings,
		AdvanceBookingHandler: adminHandler.AdvanceBooking,
		CancelBookingHandler:  adminHandler.CancelBooking,
		DeleteBookingHandler:  adminHandler.DeleteBooking,

		StorageBackend: store.Name(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
