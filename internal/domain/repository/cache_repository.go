package repository

import (
	"context"
	"time"
)

// CacheRepository - кеш ответов CMS и sitemap. Значения хранятся как
// сериализованный JSON или готовый XML; ключи без общего префикса.
type CacheRepository interface {
	// Get возвращает значение; nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение на ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete инвалидирует ключ после вебхука CMS
	Delete(ctx context.Context, key string) error
}
