package processors

import (
	"context"
	"errors"
	"fmt"

	"woosync/internal/documents"
	"woosync/internal/events"
	"woosync/internal/logger"
	"woosync/internal/models"
	"woosync/internal/validation"
)

type ProductReader interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// EventProcessor checks synced documents against the product field rules.
// Rule violations are logged, not returned: the document is already
// committed and the next fetch overwrites it.
type EventProcessor struct {
	products  ProductReader
	validator *validation.Validator
	logger    *logger.Logger
}

func NewEventProcessor(products ProductReader, validator *validation.Validator, logger *logger.Logger) *EventProcessor {
	return &EventProcessor{
		products:  products,
		validator: validator,
		logger:    logger,
	}
}

func (ep *EventProcessor) Process(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.ProductSynced:
		return ep.productSynced(ctx, event)
	default:
		ep.logger.Debug("Ignoring event %s of type %q", event.ID, event.Type)
		return nil
	}
}

func (ep *EventProcessor) productSynced(ctx context.Context, event events.Event) error {
	product, err := ep.products.GetProduct(ctx, event.DocumentID)
	if errors.Is(err, documents.ErrDocumentNotFound) {
		ep.logger.Warn("Synced document %s no longer exists", event.DocumentID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load synced document %s: %w", event.DocumentID, err)
	}

	if product.WooID != event.WooID {
		ep.logger.Warn("Document %s now links product %d, event was for %d", product.ID, product.WooID, event.WooID)
	}

	issues := ep.validator.ValidateProduct(product)
	if len(issues) == 0 {
		ep.logger.Info("Document %s synced from product %d is valid", product.ID, event.WooID)
		return nil
	}

	for _, issue := range issues {
		ep.logger.WithFields(map[string]interface{}{
			"document_id": product.ID,
			"woo_id":      event.WooID,
			"field":       issue.Field,
			"rule":        issue.Tag,
		}).Warn(issue.Message)
	}
	return nil
}
