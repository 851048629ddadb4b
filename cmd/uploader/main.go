// The uploader runs one aggregation cycle and publishes the result to object
// storage. It is intended for scheduled invocation (cron, Lambda-style batch).
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedule-service/internal/aggregator"
	"schedule-service/internal/config"
	"schedule-service/internal/domain"
	"schedule-service/internal/logging"
	"schedule-service/internal/metrics"
	"schedule-service/internal/server"
	"schedule-service/internal/storage"
)

const appVersion = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "schedule-uploader",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewRecorder()

	uploader, err := storage.NewUploader(ctx, storage.Config{
		Bucket: cfg.Storage.Bucket,
		Key:    cfg.Storage.Key,
		Region: cfg.Storage.Region,
	}, logger, recorder)
	if err != nil {
		logging.Error(logger, "uploader setup failed", err)
		return 1
	}

	agg := aggregator.New(server.BuildSources(cfg, logger), logger, recorder)

	games, err := agg.Schedule(ctx)
	if err != nil {
		logging.Error(logger, "schedule aggregation failed", err)
		return 1
	}

	payload := domain.NewPublishedSchedule(games, time.Now().UTC().Format(time.RFC3339))
	if err := uploader.Upload(ctx, payload); err != nil {
		logging.Error(logger, "schedule upload failed", err)
		return 1
	}

	logging.Info(logger, "schedule published",
		slog.Int(logging.FieldCount, payload.Count),
		slog.String(logging.FieldBucket, cfg.Storage.Bucket),
		slog.String(logging.FieldKey, cfg.Storage.Key),
	)
	return 0
}
