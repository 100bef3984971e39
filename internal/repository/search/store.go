package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/config"
	"github.com/smartmap-web/internal/domain/repository"
	"github.com/smartmap-web/internal/repository/elasticsearch"
	"github.com/smartmap-web/internal/repository/memory"
)

// OpenStore выбирает хранилище индексов по SEARCH_BACKEND
func OpenStore(cfg config.ElasticConfig, logger *zap.Logger) (repository.DocumentStore, error) {
	switch cfg.Backend {
	case "memory":
		logger.Warn("Using in-memory search index, documents are lost on restart")
		return memory.NewStore(logger), nil
	case "elasticsearch":
		store, err := elasticsearch.NewStore(elasticsearch.Config{
			URL:      cfg.URL,
			Username: cfg.Username,
			Password: cfg.Password,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown search backend %q", cfg.Backend)
	}
}
