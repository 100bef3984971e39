package repository

import (
	"context"

	"github.com/smartmap-web/internal/domain"
)

// ContentRepository - read access to the CMS, cached where the entity allows it
type ContentRepository interface {
	GetLanguages(ctx context.Context) ([]domain.Language, error)

	GetTranslations(ctx context.Context) ([]domain.Translation, error)
	GetTranslationsByPrefix(ctx context.Context, languageCode, keyPrefix string) (map[string]string, error)
	RemoveTranslationsCache(ctx context.Context) error

	// GetPages возвращает опубликованные страницы языка для api path региона
	GetPages(ctx context.Context, languageCode, pageAPIPath string) ([]domain.Page, error)
	GetPage(ctx context.Context, pageID int, pageAPIPath string) (*domain.Page, error)
	RemovePageCache(ctx context.Context, pageID int) error
	RemovePagesCache(ctx context.Context, pageAPIPath string) error

	GetRegions(ctx context.Context, languageCode string, allLanguages bool) ([]domain.CmsRegion, error)
	GetRegion(ctx context.Context, id int) (*domain.CmsRegion, error)
	GetRegionList(ctx context.Context, urlPath, languageCode string) (*domain.RegionList, error)

	// GetBusinesses загружает все страницы бизнесов api path, без кеша
	GetBusinesses(ctx context.Context, businessAPIPath string) ([]domain.CmsBusiness, error)
	GetBusiness(ctx context.Context, id int, businessAPIPath string) (*domain.CmsBusiness, error)

	GetPageTypes(ctx context.Context) ([]domain.PageType, error)
	GetMediaList(ctx context.Context) ([]domain.Media, error)

	GetTag(ctx context.Context, id int) (*domain.CmsTag, error)
	GetTags(ctx context.Context, languageCode string) ([]domain.CmsTag, error)
	GetTagGroups(ctx context.Context) ([]domain.TagGroup, error)
}
