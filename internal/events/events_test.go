package events

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woosync/internal/config"
	"woosync/internal/logger"
	"woosync/internal/models"
)

func TestNewProductSynced(t *testing.T) {
	fields := models.ProductFields{Title: "Shoe", Price: "8"}
	event := NewProductSynced("doc-1", 99, fields)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, ProductSynced, event.Type)
	assert.Equal(t, "doc-1", event.DocumentID)
	assert.Equal(t, int64(99), event.WooID)
	assert.Equal(t, fields, event.Fields)
	assert.False(t, event.Timestamp.IsZero())

	raw, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"document_id":"doc-1"`)
	assert.Contains(t, string(raw), `"type":"product.synced"`)
}

func TestNewPublisherWithoutBrokers(t *testing.T) {
	log := logger.New("info")
	log.SetOutput(&bytes.Buffer{})

	publisher := NewPublisher(&config.Config{KafkaTopic: "product-events"}, log)

	assert.IsType(t, NopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), NewProductSynced("doc-1", 1, models.ProductFields{})))
	assert.NoError(t, publisher.Close())
}

func TestNewPublisherWithBrokers(t *testing.T) {
	log := logger.New("info")
	log.SetOutput(&bytes.Buffer{})

	publisher := NewPublisher(&config.Config{KafkaBrokers: "localhost:9092,localhost:9093", KafkaTopic: "product-events"}, log)
	defer publisher.Close()

	kafkaPublisher, ok := publisher.(*KafkaPublisher)
	require.True(t, ok)
	assert.Equal(t, "product-events", kafkaPublisher.writer.Topic)
}
