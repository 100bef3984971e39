package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/config"
)

const (
	connectTimeout = 5 * time.Second
	// к таймауту чтения XREADGROUP go-redis добавляет Block
	ioTimeout = 3 * time.Second
)

// Redis - одно подключение на процесс: кеш контента CMS и стрим
// синхронизации индекса используют общий клиент
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis подключается и проверяет соединение
func NewRedis(cfg *config.Config, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ClientName:   cfg.Site.Name,
		DialTimeout:  connectTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetRedisAddr(), err)
	}

	logger.Info("Redis connected",
		zap.String("addr", cfg.GetRedisAddr()),
		zap.Int("db", cfg.Redis.DB),
	)

	return &Redis{
		client: client,
		logger: logger,
	}, nil
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}

// Health используется /api/health
func (r *Redis) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
