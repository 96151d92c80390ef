package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"woosync/internal/config"
	"woosync/internal/database"
	"woosync/internal/documents"
	"woosync/internal/logger"
	"woosync/internal/validation"
	"woosync/internal/worker"
	"woosync/internal/worker/processors"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	if cfg.KafkaBrokers == "" {
		logger.Fatal("KAFKA_BROKERS environment variable is not defined")
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	processor := processors.NewEventProcessor(documents.NewRepository(db.DB), validation.New(logger), logger)

	// Initialize worker
	w := worker.New(cfg, logger, processor)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// Start worker
	logger.Info("Starting worker...")
	go func() {
		w.Start(ctx)
		close(done)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down worker...")
	cancel()
	<-done
	w.Stop()
}
