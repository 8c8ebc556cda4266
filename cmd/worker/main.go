package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/adapters/event"
	"github.com/khoahotran/dynamic-profile/adapters/media_storage"
	"github.com/khoahotran/dynamic-profile/adapters/persistence"
	backupUC "github.com/khoahotran/dynamic-profile/internal/application/usecase/backup"
	"github.com/khoahotran/dynamic-profile/internal/config"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

func main() {
	fmt.Println("Starting Dynamic Profile Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Worker needs Kafka brokers", errors.New("config Kafka brokers not found"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage
	storage, closeStorage, err := persistence.NewDocumentStorage(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init document storage", err)
	}
	defer closeStorage()

	// Cloudinary Uploader
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Worker Use Case
	backupUseCase := backupUC.NewBackupUseCase(storage, cfg.Storage.Key, uploader, appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "profile-backup-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicProfileEvents))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.ProfileEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err, zap.Int64("offset", msg.Offset))
			commitMessage(consumer, msg, appLogger)
			continue
		}

		if payload.StorageKey != "" && payload.StorageKey != cfg.Storage.Key {
			appLogger.Warn("Event for another storage key, skipping", zap.String("storage_key", payload.StorageKey))
			commitMessage(consumer, msg, appLogger)
			continue
		}

		appLogger.Info("Processing profile event",
			zap.String("event_type", payload.EventType),
			zap.Time("occurred_at", payload.OccurredAt),
		)
		if _, err := backupUseCase.Execute(ctx); err != nil {
			appLogger.Error("Failed to process profile event", err, zap.String("storage_key", payload.StorageKey))
			continue
		}

		commitMessage(consumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
