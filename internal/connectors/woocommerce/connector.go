package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"woosync/internal/config"
	"woosync/internal/logger"
	wc "woosync/internal/services/woocommerce"
)

// WooCommerceConnector talks to the backend proxy that holds the WooCommerce
// REST API logic. Each call issues exactly one request and never retries.
type WooCommerceConnector struct {
	config config.ProxyConfig
	logger *logger.Logger
	client *http.Client
}

type Option func(*WooCommerceConnector)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *WooCommerceConnector) {
		c.client = client
	}
}

func New(cfg config.ProxyConfig, logger *logger.Logger, opts ...Option) *WooCommerceConnector {
	connector := &WooCommerceConnector{
		config: cfg,
		logger: logger,
		// No client timeout: the caller's context bounds the request.
		client: &http.Client{},
	}
	for _, opt := range opts {
		opt(connector)
	}
	return connector
}

// TestConnectionResult is the proxy's summary of a successful test.
type TestConnectionResult struct {
	TestProduct struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"testProduct"`
	StoreInfo struct {
		ProductCount int64 `json:"productCount"`
	} `json:"storeInfo"`
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// TestConnection asks the proxy to fetch the given product with the stored
// credentials.
func (c *WooCommerceConnector) TestConnection(ctx context.Context, testProductID int64) (*TestConnectionResult, error) {
	var resp struct {
		envelope
		TestConnectionResult
	}

	body := map[string]int64{"testProductId": testProductID}
	if err := c.post(ctx, c.config.TestConnectionURL(), body, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, newApplicationError(resp.Error, "API test failed")
	}

	c.logger.Debug("Connection test succeeded for product %d", testProductID)
	return &resp.TestConnectionResult, nil
}

// FetchProduct retrieves one WooCommerce product through the proxy.
func (c *WooCommerceConnector) FetchProduct(ctx context.Context, productID int64) (*wc.Product, error) {
	var resp struct {
		envelope
		Product *wc.Product `json:"product"`
	}

	body := map[string]int64{"productId": productID}
	if err := c.post(ctx, c.config.FetchProductURL(), body, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, newApplicationError(resp.Error, "Failed to fetch product data")
	}

	c.logger.Debug("Fetched WooCommerce product %d", productID)
	return resp.Product, nil
}

func (c *WooCommerceConnector) post(ctx context.Context, url string, payload interface{}, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &RequestError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
			Err:        err,
		}
	}
	return nil
}

// statusError prefers the proxy's own error message and falls back to the
// status line. An unparsable body is treated as empty.
func statusError(resp *http.Response, body []byte) error {
	var errBody struct {
		Error string `json:"error"`
	}
	json.Unmarshal(body, &errBody)

	message := errBody.Error
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, statusText(resp))
	}
	return &RequestError{StatusCode: resp.StatusCode, Message: message}
}

// statusText returns the reason phrase the server actually sent.
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
