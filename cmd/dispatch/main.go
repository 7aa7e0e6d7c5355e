package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/sewaroda/sewaroda/internal/pkg/config"
	"github.com/sewaroda/sewaroda/internal/pkg/database"
	"github.com/sewaroda/sewaroda/internal/pkg/health"
	"github.com/sewaroda/sewaroda/internal/pkg/logger"
	"github.com/sewaroda/sewaroda/internal/pkg/middleware"
	natspkg "github.com/sewaroda/sewaroda/internal/pkg/nats"
	"github.com/sewaroda/sewaroda/internal/pkg/server"
	wspkg "github.com/sewaroda/sewaroda/internal/pkg/websocket"
	"github.com/sewaroda/sewaroda/services/dispatch/gateway"
	"github.com/sewaroda/sewaroda/services/dispatch/handler"
	"github.com/sewaroda/sewaroda/services/dispatch/repository"
	"github.com/sewaroda/sewaroda/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	presenceRepo := repository.NewPresenceRepo(configs, redisClient)
	notifRepo := repository.NewNotificationRepo(postgresClient.GetDB())
	bookingRepo := repository.NewDriverBookingRepo(postgresClient.GetDB())

	// Initialize gateways
	mapsGW, err := gateway.NewMapsGW(configs, redisClient)
	if err != nil {
		zapLogger.Fatal("Failed to create maps client", logger.Err(err))
	}
	eventGW := gateway.NewEventGW(natsClient)

	// The WebSocket manager doubles as the realtime gateway: it owns the
	// live connections and the booking groups dispatch broadcasts to.
	wsManager := wspkg.NewManager(configs.JWT)

	// Initialize usecase
	dispatchUC := usecase.NewDispatchUC(configs, presenceRepo, notifRepo, bookingRepo, mapsGW, wsManager, eventGW)

	// Initialize handlers
	h := handler.NewHandler(dispatchUC, natsClient, wsManager, configs.JWT)

	// Initialize NATS consumers
	if err := h.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.LoggerMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e, middleware.NewAPIKeyMiddleware())

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
