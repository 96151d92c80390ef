package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"woosync/internal/config"
	"woosync/internal/logger"
	"woosync/internal/models"
)

const ProductSynced = "product.synced"

// Event is the message written to the product events topic.
type Event struct {
	ID         string               `json:"id"`
	Type       string               `json:"type"`
	DocumentID string               `json:"document_id"`
	WooID      int64                `json:"woo_id"`
	Fields     models.ProductFields `json:"fields"`
	Timestamp  time.Time            `json:"timestamp"`
}

// NewProductSynced describes a committed fetch.
func NewProductSynced(documentID string, wooID int64, fields models.ProductFields) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       ProductSynced,
		DocumentID: documentID,
		WooID:      wooID,
		Fields:     fields,
		Timestamp:  time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NewPublisher returns a Kafka publisher, or a no-op one when no brokers are
// configured.
func NewPublisher(cfg *config.Config, logger *logger.Logger) Publisher {
	if cfg.KafkaBrokers == "" {
		logger.Info("KAFKA_BROKERS not set, product events are disabled")
		return NopPublisher{}
	}
	return NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, logger)
}

type KafkaPublisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.DocumentID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "message_id", Value: []byte(event.ID)},
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	p.logger.Debug("Published %s for document %s", event.Type, event.DocumentID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (NopPublisher) Close() error { return nil }
