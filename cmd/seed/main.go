package main

import (
	"context"
	"log"
	"time"

	"fisk-dimension/internal/repository"
	"fisk-dimension/pkg/config"
	"fisk-dimension/pkg/logger"
	"fisk-dimension/pkg/postgres"

	"go.uber.org/zap"
)

// batchSize keeps each INSERT well under the postgres bind parameter limit.
const batchSize = 500

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	txRepo := repository.NewTransactionRepository(db, appLogger)
	if err := txRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	appLogger.Info("Starting database seeding...",
		zap.Int("size", cfg.Sample.Size),
		zap.Int64("seed", cfg.Sample.Seed),
	)

	records := repository.GenerateSampleTransactions(cfg.Sample.Size, cfg.Sample.Seed, time.Now())
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := txRepo.CreateBatch(ctx, records[start:end]); err != nil {
			appLogger.Fatal("Failed to insert sample transactions", zap.Int("offset", start), zap.Error(err))
		}
		appLogger.Debug("Inserted batch", zap.Int("offset", start), zap.Int("count", end-start))
	}

	appLogger.Info("Database seeding completed successfully!", zap.Int("transactions", len(records)))
}
