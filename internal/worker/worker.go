package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"woosync/internal/config"
	"woosync/internal/events"
	"woosync/internal/logger"
)

type Processor interface {
	Process(ctx context.Context, event events.Event) error
}

type Worker struct {
	config    *config.Config
	logger    *logger.Logger
	reader    *kafka.Reader
	processor Processor
}

func New(cfg *config.Config, logger *logger.Logger, processor Processor) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(cfg.KafkaBrokers, ","),
		GroupID:        cfg.ServiceName + "-worker",
		Topic:          cfg.KafkaTopic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &Worker{
		config:    cfg,
		logger:    logger,
		reader:    reader,
		processor: processor,
	}
}

// Start reads events until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Worker started, listening for events on %s...", w.config.KafkaTopic)

	for {
		message, err := w.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		w.handle(ctx, message.Value)
	}
}

func (w *Worker) handle(ctx context.Context, value []byte) {
	w.logger.Debug("Received message: %s", string(value))

	var event events.Event
	if err := json.Unmarshal(value, &event); err != nil {
		w.logger.Error("Failed to parse event: %v", err)
		return
	}

	if err := w.processor.Process(ctx, event); err != nil {
		w.logger.Error("Failed to process event %s: %v", event.ID, err)
		return
	}

	w.logger.Debug("Event %s processed successfully", event.ID)
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	if err := w.reader.Close(); err != nil {
		w.logger.Error("Failed to close reader: %v", err)
	}
}
