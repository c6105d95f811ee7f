package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/pkg/config"
	"github.com/CHOIisaac/chalna-api/internal/pkg/database"
	"github.com/CHOIisaac/chalna-api/internal/pkg/health"
	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/middleware"
	natspkg "github.com/CHOIisaac/chalna-api/internal/pkg/nats"
	"github.com/CHOIisaac/chalna-api/internal/pkg/retry"
	"github.com/CHOIisaac/chalna-api/internal/pkg/server"
	authhandler "github.com/CHOIisaac/chalna-api/services/auth/handler"
	authrepository "github.com/CHOIisaac/chalna-api/services/auth/repository"
	authusecase "github.com/CHOIisaac/chalna-api/services/auth/usecase"
	ledgergateway "github.com/CHOIisaac/chalna-api/services/ledger/gateway"
	ledgerhandler "github.com/CHOIisaac/chalna-api/services/ledger/handler"
	ledgerrepository "github.com/CHOIisaac/chalna-api/services/ledger/repository"
	ledgerusecase "github.com/CHOIisaac/chalna-api/services/ledger/usecase"
	notificationconsumer "github.com/CHOIisaac/chalna-api/services/notifications/consumer"
	notificationgateway "github.com/CHOIisaac/chalna-api/services/notifications/gateway"
	notificationhandler "github.com/CHOIisaac/chalna-api/services/notifications/handler"
	notificationrepository "github.com/CHOIisaac/chalna-api/services/notifications/repository"
	notificationusecase "github.com/CHOIisaac/chalna-api/services/notifications/usecase"
	schedulehandler "github.com/CHOIisaac/chalna-api/services/schedules/handler"
	schedulerepository "github.com/CHOIisaac/chalna-api/services/schedules/repository"
	scheduleusecase "github.com/CHOIisaac/chalna-api/services/schedules/usecase"
	statshandler "github.com/CHOIisaac/chalna-api/services/stats/handler"
	statsrepository "github.com/CHOIisaac/chalna-api/services/stats/repository"
	statsusecase "github.com/CHOIisaac/chalna-api/services/stats/usecase"
)

func main() {
	appName := "chalna-api"
	configPath := "config/chalna.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Backends may come up after the API in orchestrated deployments,
	// so initial connections go through bounded exponential backoff.
	retrier := retry.NewWithDefaults(zapLogger)
	startupCtx := context.Background()

	// Initialize PostgreSQL and apply pending migrations
	var postgresClient *database.PostgresClient
	err = retrier.Execute(startupCtx, func(ctx context.Context) error {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	if err := database.RunMigrations(postgresClient.GetDB()); err != nil {
		zapLogger.Fatal("Failed to run migrations", logger.Err(err))
	}

	// Initialize Redis client
	var redisClient *database.RedisClient
	err = retrier.Execute(startupCtx, func(ctx context.Context) error {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client, producer and consumer
	var natsClient *natspkg.Client
	err = retrier.Execute(startupCtx, func(ctx context.Context) error {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	producer := natspkg.NewProducer(natsClient)
	consumer := natspkg.NewConsumer(natsClient)
	defer consumer.Stop()

	// Initialize repositories
	ledgerRepo := ledgerrepository.NewLedgerRepo(configs, postgresClient)
	statsRepo := statsrepository.NewStatsRepo(postgresClient)
	statsCache := statsrepository.NewStatsCache(redisClient)
	scheduleRepo := schedulerepository.NewScheduleRepo(postgresClient)
	notificationRepo := notificationrepository.NewNotificationRepo(postgresClient)
	userRepo := authrepository.NewUserRepo(postgresClient)

	// Initialize gateways
	ledgerGW := ledgergateway.NewLedgerGW(producer, redisClient)
	notificationGW := notificationgateway.NewNotificationGW(producer)

	// Initialize usecases
	ledgerUC := ledgerusecase.NewLedgerUC(ledgerRepo, ledgerRepo, ledgerGW, configs)
	settingsUC := ledgerusecase.NewSettingsUC(ledgerRepo)
	if err := settingsUC.LoadEventSettings(startupCtx); err != nil {
		zapLogger.Fatal("Failed to load event settings", logger.Err(err))
	}
	statsUC := statsusecase.NewStatsUC(statsRepo, statsCache, configs)
	scheduleUC := scheduleusecase.NewScheduleUC(scheduleRepo, ledgerUC, configs)
	notificationUC := notificationusecase.NewNotificationUC(notificationRepo, notificationGW, configs)
	authUC := authusecase.NewAuthUC(userRepo, configs)

	// Reminder evaluator runs inside the API process and stops with it
	evaluatorCtx, stopEvaluator := context.WithCancel(context.Background())
	defer stopEvaluator()
	go notificationUC.RunReminderEvaluator(evaluatorCtx)

	// Transaction confirmations ride on the ledger event stream
	txnConsumer := notificationconsumer.NewTransactionConsumer(consumer, notificationUC)
	if err := txnConsumer.Start(evaluatorCtx); err != nil {
		zapLogger.Fatal("Failed to start transaction consumer", logger.Err(err))
	}

	// Initialize Echo with the shared middleware chain
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Health endpoints stay unversioned and unauthenticated
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Versioned API surface
	api := e.Group("/api/v1")

	// Login has no user identity yet, so it is limited per client IP
	public := api.Group("")
	public.Use(middleware.IPRateLimiter(30, time.Minute, redisClient.GetClient()))

	authHandler := authhandler.NewAuthHandler(authUC)
	authHandler.RegisterRoutes(public)

	// The user limiter runs after JWT auth so it counts per user, not per IP
	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(configs.JWT))
	protected.Use(middleware.UserRateLimiter(120, time.Minute, redisClient.GetClient()))

	contactHandler := ledgerhandler.NewContactHandler(ledgerUC)
	txnHandler := ledgerhandler.NewTransactionHandler(ledgerUC)
	settingsHandler := ledgerhandler.NewSettingsHandler(settingsUC)
	ledgerhandler.RegisterRoutes(protected, contactHandler, txnHandler, settingsHandler)

	statsHandler := statshandler.NewStatsHandler(statsUC)
	statsHandler.RegisterRoutes(protected)

	scheduleHandler := schedulehandler.NewScheduleHandler(scheduleUC)
	scheduleHandler.RegisterRoutes(protected)

	notificationHandler := notificationhandler.NewNotificationHandler(notificationUC)
	notificationHandler.RegisterRoutes(protected)

	// Register component cleanup for shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		stopEvaluator()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		consumer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown finished with errors", logger.Err(err))
	}
}
