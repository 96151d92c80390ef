package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Proxy endpoint variables.
const (
	EnvAPIURL             = "WOOCOMMERCE_API_URL"
	EnvTestConnectionPath = "WOOCOMMERCE_TEST_CONNECTION_PATH"
	EnvFetchProductPath   = "WOOCOMMERCE_FETCH_PRODUCT_PATH"
)

type Config struct {
	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers string
	KafkaTopic   string

	// API Configuration
	APIPort            string
	APIHost            string
	CORSAllowedOrigins []string
	ActionRateLimit    int

	// WooCommerce proxy
	Proxy ProxyConfig

	// Tracing
	TracingEnabled bool
	ServiceName    string

	// Environment
	Env      string
	LogLevel string
}

// ProxyConfig locates the backend proxy that talks to the WooCommerce REST API.
type ProxyConfig struct {
	BaseURL            string
	TestConnectionPath string
	FetchProductPath   string
}

// TestConnectionURL is the full URL of the test connection endpoint.
func (p ProxyConfig) TestConnectionURL() string {
	return p.BaseURL + p.TestConnectionPath
}

// FetchProductURL is the full URL of the fetch product endpoint.
func (p ProxyConfig) FetchProductURL() string {
	return p.BaseURL + p.FetchProductPath
}

func Load() (*Config, error) {
	// Load .env files; both are optional
	godotenv.Load(".env.local")
	godotenv.Load()

	proxy, err := LoadProxy()
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabaseURL:        getEnv("DATABASE_URL", "sqlite://woosync.db"),
		KafkaBrokers:       getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:         getEnv("KAFKA_TOPIC", "product-events"),
		APIPort:            getEnv("API_PORT", "8080"),
		APIHost:            getEnv("API_HOST", "0.0.0.0"),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3333"}),
		ActionRateLimit:    getEnvAsInt("ACTION_RATE_LIMIT", 5),
		Proxy:              *proxy,
		TracingEnabled:     getEnvAsBool("TRACING_ENABLED", false),
		ServiceName:        getEnv("SERVICE_NAME", "woosync"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}, nil
}

// LoadProxy reads the proxy endpoint variables. Each one is required and the
// base URL must be an absolute URL.
func LoadProxy() (*ProxyConfig, error) {
	baseURL, err := requireEnv(EnvAPIURL)
	if err != nil {
		return nil, err
	}
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	testPath, err := requireEnv(EnvTestConnectionPath)
	if err != nil {
		return nil, err
	}

	fetchPath, err := requireEnv(EnvFetchProductPath)
	if err != nil {
		return nil, err
	}

	return &ProxyConfig{
		BaseURL:            baseURL,
		TestConnectionPath: testPath,
		FetchProductPath:   fetchPath,
	}, nil
}

var validate = validator.New()

func validateBaseURL(raw string) error {
	if err := validate.Var(raw, "required,url"); err != nil {
		return fmt.Errorf("invalid %s format: %s. Please provide a valid URL (e.g., http://localhost:3001)", EnvAPIURL, raw)
	}
	return nil
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is not defined. Please add it to your .env.local file in the service root", key)
	}
	return value, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
