package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/query"
	"github.com/smartmap-web/internal/domain/repository"
)

// TagRepository - tags index
type TagRepository struct {
	*Repository[domain.Tag]
}

var _ repository.TagRepository = (*TagRepository)(nil)

func NewTagRepository(store repository.DocumentStore, index string, maxSize int, logger *zap.Logger) *TagRepository {
	return &TagRepository{Repository: NewRepository[domain.Tag](store, index, maxSize, logger)}
}

func (r *TagRepository) GetByLanguageCode(ctx context.Context, languageCode string) ([]domain.Tag, error) {
	if languageCode == "" {
		languageCode = domain.DefaultLanguageCode
	}

	resp, err := r.Search(ctx, query.Request{
		Query: query.Term{Field: "languageCode.keyword", Value: languageCode},
		Size:  r.maxSize,
	})
	if err != nil {
		return nil, fmt.Errorf("get tags for %s: %w", languageCode, err)
	}
	return DecodeHits[domain.Tag](resp.Hits)
}
