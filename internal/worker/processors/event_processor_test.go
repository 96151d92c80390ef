package processors

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woosync/internal/documents"
	"woosync/internal/events"
	"woosync/internal/logger"
	"woosync/internal/models"
	"woosync/internal/validation"
)

type fakeProducts map[string]*models.Product

func (f fakeProducts) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if id == "broken" {
		return nil, errors.New("database is locked")
	}
	product, ok := f[id]
	if !ok {
		return nil, documents.ErrDocumentNotFound
	}
	return product, nil
}

func newProcessor(products fakeProducts) (*EventProcessor, *bytes.Buffer) {
	out := &bytes.Buffer{}
	log := logger.New("debug")
	log.SetOutput(out)
	return NewEventProcessor(products, validation.New(log), log), out
}

func TestProductSyncedValidDocument(t *testing.T) {
	ep, out := newProcessor(fakeProducts{
		"doc-1": {ID: "doc-1", WooID: 99, ProductFields: models.ProductFields{Title: "Shoe", StockStatus: "instock"}},
	})

	err := ep.Process(context.Background(), events.NewProductSynced("doc-1", 99, models.ProductFields{}))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Document doc-1 synced from product 99 is valid")
}

func TestProductSyncedLogsRuleViolations(t *testing.T) {
	ep, out := newProcessor(fakeProducts{
		"doc-1": {ID: "doc-1", WooID: 99, ProductFields: models.ProductFields{AverageRating: 7, StockStatus: "sold"}},
	})

	err := ep.Process(context.Background(), events.NewProductSynced("doc-1", 99, models.ProductFields{}))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "averageRating must be at most 5")
	assert.Contains(t, out.String(), "stockStatus must be one of")
}

func TestProductSyncedMissingDocument(t *testing.T) {
	ep, out := newProcessor(fakeProducts{})

	err := ep.Process(context.Background(), events.NewProductSynced("gone", 99, models.ProductFields{}))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Synced document gone no longer exists")
}

func TestProductSyncedReadFailure(t *testing.T) {
	ep, _ := newProcessor(fakeProducts{})

	err := ep.Process(context.Background(), events.NewProductSynced("broken", 99, models.ProductFields{}))

	assert.ErrorContains(t, err, "database is locked")
}

func TestUnknownEventIgnored(t *testing.T) {
	ep, _ := newProcessor(fakeProducts{})

	assert.NoError(t, ep.Process(context.Background(), events.Event{ID: "evt", Type: "product.deleted"}))
}
