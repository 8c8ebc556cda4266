package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/config"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

const TopicProfileEvents = "profile.events"

const ProfileEventTypeUpdated = "updated"

// ProfileEventPayload announces that the stored document changed. Consumers
// read the document itself from storage.
type ProfileEventPayload struct {
	EventType     string    `json:"event_type"`
	StorageKey    string    `json:"storage_key"`
	SchemaVersion int       `json:"schema_version"`
	OwnerName     string    `json:"owner_name"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// MessageWriter is the part of kafka.Writer the producer uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ProfileEventsWriter MessageWriter
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicProfileEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka producer successfully.", zap.Strings("brokers", brokers))
	return &KafkaProducerClient{ProfileEventsWriter: writer, logger: log}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal profile event: %w", err)
	}
	err = c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.StorageKey),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write profile event: %w", err)
	}
	return nil
}

// OnDocumentChanged returns a store subscriber that publishes an event for
// every committed update. Publishing runs in its own goroutine.
func (c *KafkaProducerClient) OnDocumentChanged(storageKey string) func(doc *profile.Document) {
	return func(doc *profile.Document) {
		payload := ProfileEventPayload{
			EventType:     ProfileEventTypeUpdated,
			StorageKey:    storageKey,
			SchemaVersion: doc.SchemaVersion,
			OwnerName:     doc.PersonalInfo.Name,
			OccurredAt:    time.Now().UTC(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := c.PublishProfileEvent(ctx, payload); err != nil {
				c.logger.Error("Failed to publish Kafka profile event", err, zap.String("storage_key", storageKey))
			}
		}()
	}
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		if err := c.ProfileEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka producer")
}
