package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tubewire/tubewire/internal/db"
	"github.com/tubewire/tubewire/internal/ingest"
	"github.com/tubewire/tubewire/internal/videoapi"
	"github.com/tubewire/tubewire/pkg/config"
	"github.com/tubewire/tubewire/pkg/logging"
	"github.com/tubewire/tubewire/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting tubewire ingestion job")

	telemetryShutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer telemetryShutdown()

	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	client, err := videoapi.New(&cfg.Video)
	if err != nil {
		logger.Fatal("Failed to create video platform client", zap.Error(err))
	}

	job := ingest.NewJob(cfg, client, database)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Ingest.Schedule != "" {
		if err := job.RunOnSchedule(ctx, cfg.Ingest.Schedule); err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal("Scheduled ingestion failed", zap.Error(err))
		}
		logger.Info("Ingestion scheduler stopped")
		return
	}

	created, err := job.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Ingestion failed", zap.Error(err))
	}
	logger.Info("Ingestion job finished", zap.Int("articles_created", created))
}
