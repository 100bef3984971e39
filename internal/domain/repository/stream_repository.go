package repository

import (
	"context"

	"github.com/smartmap-web/internal/domain"
)

// StreamRepository - очередь событий синхронизации индекса (Redis Streams).
// API публикует IndexSyncEvent, воркер читает их через consumer group.
type StreamRepository interface {
	// PublishToStream сериализует событие в JSON и добавляет в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup идемпотентно создаёт группу вместе со стримом
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream отдаёт новые сообщения группы; канал закрывается
	// после отмены контекста
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage снимает сообщение из pending группы
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
