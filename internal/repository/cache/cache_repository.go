package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain/repository"
)

// KeyPrefix - пространство ключей кеша; стрим синхронизации живёт вне его
const KeyPrefix = "smartmap:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository - кеш контента поверх общего подключения
func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return NewCacheRepositoryFromClient(redis.Client(), redis.logger)
}

// NewCacheRepositoryFromClient оборачивает готовый клиент
func NewCacheRepositoryFromClient(client *redis.Client, logger *zap.Logger) repository.CacheRepository {
	return &cacheRepository{client: client, logger: logger}
}

func key(name string) string {
	return KeyPrefix + name
}

func (r *cacheRepository) Get(ctx context.Context, name string) ([]byte, error) {
	val, err := r.client.Get(ctx, key(name)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		r.logger.Debug("Cache miss", zap.String("key", name))
		return nil, nil
	case err != nil:
		r.logger.Warn("Failed to read content cache", zap.String("key", name), zap.Error(err))
		return nil, fmt.Errorf("cache get %s: %w", name, err)
	}

	r.logger.Debug("Cache hit", zap.String("key", name), zap.Int("bytes", len(val)))
	return val, nil
}

// Set с ttl <= 0 хранит значение без срока
func (r *cacheRepository) Set(ctx context.Context, name string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, key(name), value, ttl).Err(); err != nil {
		r.logger.Warn("Failed to write content cache", zap.String("key", name), zap.Error(err))
		return fmt.Errorf("cache set %s: %w", name, err)
	}

	r.logger.Debug("Cache set", zap.String("key", name), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, name string) error {
	removed, err := r.client.Del(ctx, key(name)).Result()
	if err != nil {
		r.logger.Warn("Failed to invalidate content cache", zap.String("key", name), zap.Error(err))
		return fmt.Errorf("cache delete %s: %w", name, err)
	}

	r.logger.Debug("Cache invalidated", zap.String("key", name), zap.Bool("existed", removed > 0))
	return nil
}
