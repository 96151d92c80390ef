package actions

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"woosync/internal/connectors/woocommerce"
	"woosync/internal/logger"
	"woosync/internal/models"
	"woosync/internal/settings"
	"woosync/internal/telemetry"
)

const settingsBusyKey = "settings:" + models.SettingsDocumentID

type ConnectionTestClient interface {
	TestConnection(ctx context.Context, testProductID int64) (*woocommerce.TestConnectionResult, error)
}

// ConnectionTester runs the "Test WooCommerce Connection" action of the
// settings document.
type ConnectionTester struct {
	client ConnectionTestClient
	busy   *Busy
	logger *logger.Logger
}

func NewConnectionTester(client ConnectionTestClient, busy *Busy, logger *logger.Logger) *ConnectionTester {
	return &ConnectionTester{
		client: client,
		busy:   busy,
		logger: logger,
	}
}

// Test validates the live settings form and asks the proxy to fetch the test
// product.
func (t *ConnectionTester) Test(ctx context.Context, form settings.FieldReader) Notification {
	accessor := settings.NewAccessor(form)

	if !accessor.CredentialsComplete() {
		return warning("Missing Credentials", "Please fill in all required fields first")
	}

	testProductID := settings.Int(form, settings.FieldTestProductID)
	if testProductID == 0 {
		return warning("Missing Test Product ID", "Please enter a test product ID to test the connection")
	}

	if !t.busy.Acquire(settingsBusyKey) {
		return inProgress
	}
	defer t.busy.Release(settingsBusyKey)

	ctx, span := telemetry.Tracer().Start(ctx, "actions.TestConnection")
	defer span.End()
	span.SetAttributes(attribute.Int64("woocommerce.test_product_id", testProductID))

	result, err := t.client.TestConnection(ctx, testProductID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.logger.Error("WooCommerce connection test failed: %v", err)
		return failure("API Test Failed", err)
	}

	productName := result.TestProduct.Name
	if productName == "" {
		productName = "Unknown Product"
	}
	productID := result.TestProduct.ID
	if productID == 0 {
		productID = testProductID
	}

	t.logger.Info("WooCommerce connection test succeeded for product %d", productID)
	return Notification{
		Status: StatusSuccess,
		Title:  "WooCommerce API Test Successful!",
		Description: fmt.Sprintf("Connected to store with %d products. Test product \"%s\" (ID: %d) fetched successfully!",
			result.StoreInfo.ProductCount, productName, productID),
	}
}

// Status is the hint shown under the test button.
func (t *ConnectionTester) Status(form settings.FieldReader) ActionStatus {
	accessor := settings.NewAccessor(form)
	busy := t.busy.IsBusy(settingsBusyKey)

	status := ActionStatus{Ready: accessor.ReadyToTest() && !busy, Busy: busy}
	switch {
	case busy:
		status.Message = "Testing WooCommerce connection..."
	case !accessor.CredentialsComplete():
		status.Message = "Fill in API credentials first, then provide a test product ID to test the connection."
	case !accessor.ReadyToTest():
		status.Message = "Provide a test product ID to test the WooCommerce API connection."
	default:
		status.Message = "Ready to test WooCommerce API connection!"
	}
	return status
}
