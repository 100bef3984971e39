package indexsync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/repository"
	"github.com/smartmap-web/internal/usecase/dto"
	"github.com/smartmap-web/internal/worker"
)

const defaultRetryDelay = 5 * time.Second

// SyncHandler - выполнение синхронизации индекса по событию
type SyncHandler interface {
	HandleSyncEvent(ctx context.Context, event domain.IndexSyncEvent) (*dto.SyncResult, error)
}

// IndexSyncWorker читает stream:index:sync и пересобирает индексы
type IndexSyncWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	handler    SyncHandler
	maxRetries int
	retryDelay time.Duration
}

// NewIndexSyncWorker создает новый IndexSyncWorker
func NewIndexSyncWorker(
	streamRepo repository.StreamRepository,
	handler SyncHandler,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *IndexSyncWorker {
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &IndexSyncWorker{
		BaseWorker: worker.NewBaseWorker("index-sync", consumerGroup, logger),
		streamRepo: streamRepo,
		handler:    handler,
		maxRetries: maxRetries,
		retryDelay: defaultRetryDelay,
	}
}

// WithRetryDelay - пауза между повторными попытками
func (w *IndexSyncWorker) WithRetryDelay(d time.Duration) *IndexSyncWorker {
	w.retryDelay = d
	return w
}

// Start запускает воркер и блокируется до остановки
func (w *IndexSyncWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting IndexSyncWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("max_retries", w.maxRetries))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamIndexSync, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamIndexSync, w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream closed")
				return nil
			}
			w.processMessage(ctx, msg)
		}
	}
}

// processMessage обрабатывает одно событие; сообщение подтверждается
// и после исчерпания попыток, чтобы оно не застревало в pending
func (w *IndexSyncWorker) processMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	event, err := parseEvent(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping", zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}
	logger = logger.With(
		zap.String("event_id", event.ID.String()),
		zap.String("target", string(event.Target)))

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		result, err := w.handler.HandleSyncEvent(ctx, event)
		if err == nil {
			logger.Info("Index sync completed",
				zap.Int("attempt", attempt),
				zap.Int("indexed", result.Indexed),
				zap.Int("skipped", result.Skipped))
			break
		}

		logger.Error("Index sync failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt == w.maxRetries {
			logger.Error("Giving up on index sync event")
			break
		}

		if !w.Sleep(ctx, w.retryDelay) {
			return
		}
	}

	w.ack(ctx, msg.ID)
}

func (w *IndexSyncWorker) ack(ctx context.Context, id string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamIndexSync, w.ConsumerGroup(), id); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", id),
			zap.Error(err))
	}
}

func parseEvent(msg domain.StreamMessage) (domain.IndexSyncEvent, error) {
	var event domain.IndexSyncEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return event, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if !event.Valid() {
		return event, fmt.Errorf("unknown sync target %q", event.Target)
	}
	return event, nil
}
