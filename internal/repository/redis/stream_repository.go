package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/repository"
)

const (
	// dataField - поле сообщения, в котором лежит JSON события
	dataField = "data"
	// streamMaxLen - приблизительный предел длины стрима
	streamMaxLen = 1000
	readCount    = 10
	readBlock    = time.Second
)

type streamRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStreamRepository создаёт репозиторий стрима синхронизации индекса
func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		logger: logger,
	}
}

// CreateConsumerGroup создаёт группу с начала стрима, чтобы события,
// опубликованные до старта воркера, тоже были обработаны
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create consumer group %s on %s: %w", group, stream, err)
	}

	r.logger.Info("Consumer group ready",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeStream читает сообщения группы до отмены контекста
func (r *streamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	messages := make(chan domain.StreamMessage, readCount)

	go func() {
		defer close(messages)

		for {
			if ctx.Err() != nil {
				return
			}

			streams, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
				Group:    group,
				Consumer: consumer,
				Streams:  []string{stream, ">"},
				Count:    readCount,
				Block:    readBlock,
			}).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}
				if ctx.Err() != nil {
					return
				}
				r.logger.Error("Failed to read from stream",
					zap.String("stream", stream),
					zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(readBlock):
				}
				continue
			}

			for _, s := range streams {
				for _, msg := range s.Messages {
					data, ok := msg.Values[dataField].(string)
					if !ok {
						r.logger.Warn("Stream message without data field",
							zap.String("stream", stream),
							zap.String("message_id", msg.ID))
						_ = r.client.XAck(ctx, stream, group, msg.ID).Err()
						continue
					}

					select {
					case messages <- domain.StreamMessage{ID: msg.ID, Data: data}:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return messages, nil
}

func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	if err := r.client.XAck(ctx, stream, group, messageID).Err(); err != nil {
		return fmt.Errorf("ack message %s: %w", messageID, err)
	}
	return nil
}

// PublishToStream сериализует data в JSON и добавляет в стрим с обрезкой длины
func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal stream payload: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{dataField: string(payload)},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("publish to %s: %w", stream, err)
	}

	r.logger.Debug("Published to stream",
		zap.String("stream", stream),
		zap.String("message_id", id))
	return nil
}
