package actions

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"woosync/internal/events"
	"woosync/internal/logger"
	"woosync/internal/models"
	"woosync/internal/settings"
	wc "woosync/internal/services/woocommerce"
	"woosync/internal/telemetry"
)

// Form fields of the product document read by the fetch action.
const (
	FieldWooID      = "wooId"
	FieldDocumentID = "_id"
)

type ProductClient interface {
	FetchProduct(ctx context.Context, productID int64) (*wc.Product, error)
}

type SettingsReader interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
}

type DocumentPatcher interface {
	PatchAndCommit(ctx context.Context, documentID string, fields models.ProductFields) error
}

// ProductFetcher runs the "Fetch from WooCommerce" action of a product
// document.
type ProductFetcher struct {
	client      ProductClient
	settings    SettingsReader
	documents   DocumentPatcher
	transformer *wc.Transformer
	events      events.Publisher
	busy        *Busy
	logger      *logger.Logger
}

func NewProductFetcher(
	client ProductClient,
	settings SettingsReader,
	documents DocumentPatcher,
	transformer *wc.Transformer,
	publisher events.Publisher,
	busy *Busy,
	logger *logger.Logger,
) *ProductFetcher {
	return &ProductFetcher{
		client:      client,
		settings:    settings,
		documents:   documents,
		transformer: transformer,
		events:      publisher,
		busy:        busy,
		logger:      logger,
	}
}

// Fetch refreshes the open product document from WooCommerce. The document
// is patched only after the proxy reported success, in a single commit.
func (f *ProductFetcher) Fetch(ctx context.Context, form settings.FieldReader) Notification {
	wooID := settings.Int(form, FieldWooID)
	documentID := settings.String(form, FieldDocumentID)

	if wooID == 0 {
		return warning("Product ID Required", "Please enter a WooCommerce Product ID first")
	}

	if !f.loadSettings(ctx).HasCredentials() {
		return warning("Missing WooCommerce Settings", "Please configure WooCommerce API credentials first")
	}

	if documentID == "" {
		return Notification{
			Status:      StatusError,
			Title:       "Document Not Found",
			Description: "Cannot update document - document ID not available. Please save the document first.",
		}
	}

	key := productBusyKey(documentID)
	if !f.busy.Acquire(key) {
		return inProgress
	}
	defer f.busy.Release(key)

	ctx, span := telemetry.Tracer().Start(ctx, "actions.FetchProduct")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("woocommerce.product_id", wooID),
		attribute.String("document.id", documentID),
	)

	fields, err := f.fetch(ctx, wooID, documentID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		f.logger.Error("Error fetching WooCommerce product %d into %s: %v", wooID, documentID, err)
		return failure("Fetch Failed", err)
	}

	if err := f.events.Publish(ctx, events.NewProductSynced(documentID, wooID, fields)); err != nil {
		f.logger.Error("Failed to publish sync event for %s: %v", documentID, err)
	}

	f.logger.Info("Fetched WooCommerce product %d into %s", wooID, documentID)
	return Notification{
		Status:      StatusSuccess,
		Title:       "Product Fetched Successfully!",
		Description: fmt.Sprintf("Fields have been updated for product ID: %d", wooID),
	}
}

func (f *ProductFetcher) fetch(ctx context.Context, wooID int64, documentID string) (models.ProductFields, error) {
	product, err := f.client.FetchProduct(ctx, wooID)
	if err != nil {
		return models.ProductFields{}, err
	}

	fields, err := f.transformer.TransformProduct(product)
	if err != nil {
		return models.ProductFields{}, err
	}

	if err := f.documents.PatchAndCommit(ctx, documentID, fields); err != nil {
		return models.ProductFields{}, err
	}
	return fields, nil
}

// loadSettings treats an unreadable settings document as missing.
func (f *ProductFetcher) loadSettings(ctx context.Context) *models.Settings {
	current, err := f.settings.GetSettings(ctx)
	if err != nil {
		f.logger.Error("Error fetching WooCommerce settings: %v", err)
		return nil
	}
	return current
}

// Status is the hint shown under the fetch button.
func (f *ProductFetcher) Status(ctx context.Context, form settings.FieldReader) ActionStatus {
	wooID := settings.Int(form, FieldWooID)
	documentID := settings.String(form, FieldDocumentID)
	busy := documentID != "" && f.busy.IsBusy(productBusyKey(documentID))

	status := ActionStatus{Ready: wooID != 0 && !busy, Busy: busy}
	switch current := f.loadSettings(ctx); {
	case current == nil || current.StoreURL == "":
		status.Message = "Please configure WooCommerce API credentials first"
	case wooID == 0:
		status.Message = "Enter a WooCommerce Product ID above, then click \"Fetch from WooCommerce\""
	case busy:
		status.Message = "Fetching product data from WooCommerce..."
	default:
		status.Message = fmt.Sprintf("Ready to fetch product data for ID: %d", wooID)
	}
	return status
}

func productBusyKey(documentID string) string {
	return "product:" + documentID
}
