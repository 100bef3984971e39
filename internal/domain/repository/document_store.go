package repository

import (
	"context"
	"encoding/json"

	"github.com/smartmap-web/internal/domain/query"
)

// IndexedDocument - document source ready to be written under its id
type IndexedDocument struct {
	ID     string
	Source json.RawMessage
}

// DocumentStore - search engine holding one collection per index
type DocumentStore interface {
	// Search выполняет поиск по индексу
	Search(ctx context.Context, index string, req query.Request) (*query.Response, error)

	// BulkIndex записывает документы, заменяя существующие с тем же id
	BulkIndex(ctx context.Context, index string, docs []IndexedDocument) error

	// Replace записывает документ целиком под id; поля, которых нет в doc, удаляются
	Replace(ctx context.Context, index, id string, doc json.RawMessage) error

	// DeleteByQuery удаляет все документы, подходящие под условие
	DeleteByQuery(ctx context.Context, index string, clause query.Clause) error

	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error
}
