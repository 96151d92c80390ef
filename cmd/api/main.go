package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"woosync/internal/actions"
	"woosync/internal/api"
	"woosync/internal/config"
	"woosync/internal/connectors/woocommerce"
	"woosync/internal/database"
	"woosync/internal/documents"
	"woosync/internal/events"
	"woosync/internal/logger"
	"woosync/internal/schema"
	wc "woosync/internal/services/woocommerce"
	"woosync/internal/telemetry"
	"woosync/internal/validation"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	if cfg.TracingEnabled {
		shutdown, err := telemetry.Init(cfg.ServiceName)
		if err != nil {
			logger.Fatal("Failed to initialize tracing: %v", err)
		}
		defer shutdown(context.Background())
	}

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	repo := documents.NewRepository(db.DB)
	connector := woocommerce.New(cfg.Proxy, logger, woocommerce.WithHTTPClient(telemetry.NewTracedHTTPClient()))
	publisher := events.NewPublisher(cfg, logger)
	defer publisher.Close()

	busy := actions.NewBusy()
	server := api.New(cfg, logger, api.Dependencies{
		Repository: repo,
		Tester:     actions.NewConnectionTester(connector, busy, logger),
		Fetcher:    actions.NewProductFetcher(connector, repo, repo, wc.NewTransformer(), publisher, busy, logger),
		Validator:  validation.New(logger),
		Schemas:    schema.Default(),
	})

	logger.Info("Using WooCommerce proxy at %s", cfg.Proxy.BaseURL)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
