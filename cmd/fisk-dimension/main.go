package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fisk-dimension/internal/api"
	"fisk-dimension/internal/api/handlers"
	"fisk-dimension/internal/models"
	"fisk-dimension/internal/repository"
	"fisk-dimension/internal/service"
	"fisk-dimension/pkg/config"
	"fisk-dimension/pkg/logger"
	"fisk-dimension/pkg/postgres"
	"fisk-dimension/pkg/redis"

	"go.uber.org/zap"
)

// @title Fisk Dimension API
// @version 1.0
// @description Chain log, threat detection, reports and forecasting for the Fisk Dimension dashboard

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Fisk Dimension service",
		zap.String("storage", cfg.Storage.Driver),
		zap.String("threat_store", cfg.Storage.ThreatStore),
		zap.String("forecast_provider", cfg.Forecast.Provider),
	)

	ctx := context.Background()

	// Transaction storage
	var txProvider service.TransactionProvider
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		txRepo := repository.NewTransactionRepository(db, appLogger)
		if err := txRepo.EnsureSchema(ctx); err != nil {
			appLogger.Fatal("Failed to prepare database schema", zap.Error(err))
		}
		txProvider = txRepo
	default:
		size, seed := cfg.Sample.Size, cfg.Sample.Seed
		txProvider = repository.NewMemoryTransactionRepository(func() []*models.Transaction {
			return repository.GenerateSampleTransactions(size, seed, time.Now())
		})
	}

	// Threat log
	var threatStore service.ThreatStore
	switch cfg.Storage.ThreatStore {
	case config.ThreatStoreRedis:
		rdb, err := redis.NewClient(ctx, &cfg.Redis, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		redisStore := repository.NewRedisThreatRepository(rdb, repository.DefaultThreatKey, appLogger)
		if err := redisStore.SeedIfAbsent(ctx, repository.SampleThreats(time.Now())); err != nil {
			appLogger.Fatal("Failed to seed threat log", zap.Error(err))
		}
		threatStore = redisStore
	default:
		threatStore = repository.NewMemoryThreatRepository(repository.SampleThreats(time.Now())...)
	}

	// Forecast backend
	var forecaster service.Forecaster
	switch cfg.Forecast.Provider {
	case config.ForecastGigaChat:
		gigaChat, err := service.NewGigaChatForecaster(ctx, &cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize GigaChat forecaster", zap.Error(err))
		}
		defer gigaChat.Close()
		forecaster = gigaChat
	case config.ForecastGemini:
		gemini, err := service.NewGeminiForecaster(ctx, &cfg.Gemini, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini forecaster", zap.Error(err))
		}
		forecaster = gemini
	default:
		forecaster = service.StubForecaster{}
	}

	// Initialize services
	classifier := service.NewThreatClassifier(service.DefaultThreatRules(cfg.Threat.LargeExpenseThreshold))
	threatService := service.NewThreatService(classifier, threatStore, cfg.Threat.SimulatedLatency, appLogger)
	txService := service.NewTransactionService(txProvider, threatService, appLogger)
	reportService := service.NewReportService(txProvider, appLogger)
	forecastService := service.NewForecastService(forecaster, appLogger)

	// Setup router
	app := api.SetupRouter(api.Handlers{
		Transactions: handlers.NewTransactionHandler(txService, appLogger),
		Threats:      handlers.NewThreatHandler(threatService, appLogger),
		Reports:      handlers.NewReportHandler(reportService, appLogger),
		Forecasts:    handlers.NewForecastHandler(forecastService, appLogger),
	}, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
