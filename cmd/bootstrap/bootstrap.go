package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"therapy-booking-service/config"
	deliveryHttp "therapy-booking-service/internal/delivery/http"
	"therapy-booking-service/internal/delivery/http/handler"
	"therapy-booking-service/internal/delivery/http/middleware"
	"therapy-booking-service/internal/infrastructure/airtable"
	"therapy-booking-service/internal/infrastructure/cache"
	"therapy-booking-service/internal/repository"
	"therapy-booking-service/internal/service"
	"therapy-booking-service/internal/usecase"
	"therapy-booking-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Autosave    *service.DraftAutosaveService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if !cfg.Airtable.IsComplete() {
		// The proxy refuses submissions until all three values resolve;
		// startup proceeds so drafts and slot listing keep working.
		logrus.Warn("Airtable configuration incomplete, submissions will be rejected")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.Server = app.initializeServer(cfg, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config, redisClient *redis.Client) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	draftRepo := repository.NewDraftRepository(redisClient, cfg.Draft.TTL)

	// Initialize services
	autosaveService := service.NewDraftAutosaveService(draftRepo, log, cfg.Draft.SettleWindow)
	app.Autosave = autosaveService

	// Initialize Airtable client
	airtableClient := airtable.NewClient(cfg.Airtable, log)

	// Initialize usecases
	intakeUsecase := usecase.NewBookingIntakeUsecase(log, customValidator, airtableClient, autosaveService, cfg.Booking)
	draftUsecase := usecase.NewDraftUsecase(log, autosaveService)

	// Initialize handlers
	bookingHandler := handler.NewBookingHandler(intakeUsecase)
	draftHandler := handler.NewDraftHandler(draftUsecase)
	proxyHandler := handler.NewAirtableProxyHandler(airtableClient, cfg.Booking.FormType, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(bookingHandler, draftHandler, proxyHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close flushes pending drafts and closes connections
func (app *App) Close() {
	if app.Autosave != nil {
		app.Autosave.Stop()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
