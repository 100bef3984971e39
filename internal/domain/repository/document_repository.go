package repository

import (
	"context"

	"github.com/smartmap-web/internal/domain"
)

// DocumentRepository - typed access to one index. Get returns nil, nil when the
// document does not exist.
type DocumentRepository[T domain.Document] interface {
	Get(ctx context.Context, id int) (*T, error)
	GetAll(ctx context.Context, from, size int) ([]T, error)
	Insert(ctx context.Context, docs []T) error
	Update(ctx context.Context, doc T) error
	Delete(ctx context.Context, id int) error
	DeleteIndex(ctx context.Context) error
}

// BusinessRepository - faceted search over indexed businesses
type BusinessRepository interface {
	DocumentRepository[domain.Business]

	// GetBusinesses возвращает страницу бизнесов, общее количество и счётчики тегов
	GetBusinesses(ctx context.Context, filter domain.BusinessFilter) (*domain.BusinessSearchResult, error)

	// GetAllBusinessCoordinates возвращает координаты бизнесов без случайной сортировки и агрегаций
	GetAllBusinessCoordinates(ctx context.Context, filter domain.BusinessFilter) ([]domain.BusinessCoordinate, error)
}

// RegionRepository - indexed regions
type RegionRepository interface {
	DocumentRepository[domain.Region]

	// GetByLanguageCode возвращает видимые регионы языка (или всех языков), упорядоченные по menu order.
	// Пустой индекс дает nil, язык без видимых регионов дает пустой срез
	GetByLanguageCode(ctx context.Context, languageCode string, allLanguages bool) ([]domain.Region, error)

	// GetByName ищет видимый регион по имени или url path
	GetByName(ctx context.Context, name, languageCode string) (*domain.Region, error)
}

// TagRepository - indexed tags
type TagRepository interface {
	DocumentRepository[domain.Tag]

	GetByLanguageCode(ctx context.Context, languageCode string) ([]domain.Tag, error)
}
