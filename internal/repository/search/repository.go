// Package search holds the typed repositories over the document store: one
// generic repository per index plus the entity specific queries.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/query"
	"github.com/smartmap-web/internal/domain/repository"
)

const idField = "id"

// Repository - generic document repository scoped to one index
type Repository[T domain.Document] struct {
	store   repository.DocumentStore
	index   string
	maxSize int
	logger  *zap.Logger
}

// NewRepository создает репозиторий для индекса
func NewRepository[T domain.Document](store repository.DocumentStore, index string, maxSize int, logger *zap.Logger) *Repository[T] {
	if maxSize <= 0 {
		maxSize = domain.MaxResultSize
	}
	return &Repository[T]{
		store:   store,
		index:   index,
		maxSize: maxSize,
		logger:  logger.With(zap.String("index", index)),
	}
}

// Index - name of the backing index
func (r *Repository[T]) Index() string {
	return r.index
}

// Get returns nil, nil when no document has the id.
func (r *Repository[T]) Get(ctx context.Context, id int) (*T, error) {
	resp, err := r.store.Search(ctx, r.index, query.Request{
		Query: query.Term{Field: idField, Value: id},
		Size:  1,
	})
	if err != nil {
		return nil, fmt.Errorf("get %d: %w", id, err)
	}
	if len(resp.Hits) == 0 {
		return nil, nil
	}

	var doc T
	if err := json.Unmarshal(resp.Hits[0].Source, &doc); err != nil {
		return nil, fmt.Errorf("decode document %d: %w", id, err)
	}
	return &doc, nil
}

// GetAll returns one page of documents in index order. A size of zero or less
// requests the configured maximum.
func (r *Repository[T]) GetAll(ctx context.Context, from, size int) ([]T, error) {
	if size <= 0 {
		size = r.maxSize
	}
	resp, err := r.Search(ctx, query.Request{
		Query: query.MatchAll{},
		From:  from,
		Size:  size,
	})
	if err != nil {
		return nil, fmt.Errorf("get all: %w", err)
	}
	return DecodeHits[T](resp.Hits)
}

// Insert indexes documents in one bulk request.
func (r *Repository[T]) Insert(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}

	indexed := make([]repository.IndexedDocument, 0, len(docs))
	for _, d := range docs {
		source, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("encode document %d: %w", d.DocumentID(), err)
		}
		indexed = append(indexed, repository.IndexedDocument{
			ID:     strconv.Itoa(d.DocumentID()),
			Source: source,
		})
	}

	if err := r.store.BulkIndex(ctx, r.index, indexed); err != nil {
		r.logger.Error("Failed to insert documents", zap.Int("count", len(docs)), zap.Error(err))
		return fmt.Errorf("insert %d documents: %w", len(docs), err)
	}
	return nil
}

// Update replaces the stored document, so fields absent from doc are dropped.
func (r *Repository[T]) Update(ctx context.Context, doc T) error {
	source, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %d: %w", doc.DocumentID(), err)
	}
	if err := r.store.Replace(ctx, r.index, strconv.Itoa(doc.DocumentID()), source); err != nil {
		r.logger.Error("Failed to update document", zap.Int("id", doc.DocumentID()), zap.Error(err))
		return fmt.Errorf("update %d: %w", doc.DocumentID(), err)
	}
	return nil
}

// Delete removes every document whose id field equals id.
func (r *Repository[T]) Delete(ctx context.Context, id int) error {
	if err := r.store.DeleteByQuery(ctx, r.index, query.Term{Field: idField, Value: id}); err != nil {
		r.logger.Error("Failed to delete document", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("delete %d: %w", id, err)
	}
	return nil
}

// DeleteIndex removes every document and keeps the index itself.
func (r *Repository[T]) DeleteIndex(ctx context.Context) error {
	if err := r.store.DeleteByQuery(ctx, r.index, query.MatchAll{}); err != nil {
		r.logger.Error("Failed to clear index", zap.Error(err))
		return fmt.Errorf("clear index: %w", err)
	}
	return nil
}

// Search runs a raw request against the index.
func (r *Repository[T]) Search(ctx context.Context, req query.Request) (*query.Response, error) {
	resp, err := r.store.Search(ctx, r.index, req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DecodeHits decodes hit sources into documents.
func DecodeHits[T any](hits []query.Hit) ([]T, error) {
	docs := make([]T, 0, len(hits))
	for _, h := range hits {
		var doc T
		if err := json.Unmarshal(h.Source, &doc); err != nil {
			return nil, fmt.Errorf("decode hit %s: %w", h.ID, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
