package cms

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/smartmap-web/internal/config"
	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/repository"
)

// Ключи кеша контента
const (
	keyPrefixPages  = "pages_"
	keyPrefixPage   = "page_"
	keyRegions      = "regions"
	keyPageTypes    = "pagetype"
	keyMediaList    = "medialist"
	keyTagGroups    = "taggroups"
	keyTranslations = "translations"
)

// source - операции CMS без кеша; реализуется Client
type source interface {
	FetchPages(ctx context.Context, pageAPIPath string) ([]domain.Page, error)
	FetchPage(ctx context.Context, pageID int, pageAPIPath string) (*domain.Page, error)
	FetchRegions(ctx context.Context) ([]domain.CmsRegion, error)
	FetchRegion(ctx context.Context, id int) (*domain.CmsRegion, error)
	FetchBusinesses(ctx context.Context, businessAPIPath string) ([]domain.CmsBusiness, error)
	FetchBusiness(ctx context.Context, id int, businessAPIPath string) (*domain.CmsBusiness, error)
	FetchPageTypes(ctx context.Context) ([]domain.PageType, error)
	FetchMediaList(ctx context.Context) ([]domain.Media, error)
	FetchTag(ctx context.Context, id int) (*domain.CmsTag, error)
	FetchTags(ctx context.Context) ([]domain.CmsTag, error)
	FetchTagGroups(ctx context.Context) ([]domain.TagGroup, error)
	FetchTranslations(ctx context.Context) ([]domain.Translation, error)
}

// Proxy - кеширующий доступ к CMS
type Proxy struct {
	source    source
	cache     repository.CacheRepository
	ttl       config.CacheConfig
	languages []domain.Language
	group     singleflight.Group
	logger    *zap.Logger
}

// NewProxy создаёт ContentRepository поверх клиента CMS и кеша
func NewProxy(src source, cache repository.CacheRepository, ttl config.CacheConfig, logger *zap.Logger) *Proxy {
	return &Proxy{
		source:    src,
		cache:     cache,
		ttl:       ttl,
		languages: domain.SupportedLanguages(),
		logger:    logger,
	}
}

var _ repository.ContentRepository = (*Proxy)(nil)

// getOrAdd читает ключ из кеша, при промахе загружает значение один раз для
// всех конкурентных запросов. Ошибки кеша не прерывают запрос.
func getOrAdd[T any](ctx context.Context, p *Proxy, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var zero T

	if raw, err := p.cache.Get(ctx, key); err != nil {
		p.logger.Warn("Content cache read failed", zap.String("key", key), zap.Error(err))
	} else if raw != nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		p.logger.Warn("Content cache entry is corrupt", zap.String("key", key))
	}

	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(value); err == nil {
			if err := p.cache.Set(ctx, key, raw, ttl); err != nil {
				p.logger.Warn("Content cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// cmsLanguage - CMS не добавляет сегмент языка для языка по умолчанию
func (p *Proxy) cmsLanguage(code string) string {
	if code == "" || code == domain.DefaultLanguage(p.languages) {
		return ""
	}
	return code
}

func (p *Proxy) linkLanguage(link string) string {
	return domain.LanguageFromLink(p.languages, link)
}

func (p *Proxy) GetLanguages(ctx context.Context) ([]domain.Language, error) {
	return p.languages, nil
}

func (p *Proxy) GetTranslations(ctx context.Context) ([]domain.Translation, error) {
	return getOrAdd(ctx, p, keyTranslations, p.ttl.TranslationsTTL, p.source.FetchTranslations)
}

// GetTranslationsByPrefix возвращает заголовок -> текст для языка
func (p *Proxy) GetTranslationsByPrefix(ctx context.Context, languageCode, keyPrefix string) (map[string]string, error) {
	if languageCode == "" {
		languageCode = domain.DefaultLanguage(p.languages)
	}
	translations, err := p.GetTranslations(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, t := range translations {
		if t.LanguageCode == languageCode && strings.HasPrefix(t.Title.Rendered, keyPrefix) {
			result[t.Title.Rendered] = t.TranslationText
		}
	}
	return result, nil
}

func (p *Proxy) RemoveTranslationsCache(ctx context.Context) error {
	return p.cache.Delete(ctx, keyTranslations)
}

func (p *Proxy) GetPages(ctx context.Context, languageCode, pageAPIPath string) ([]domain.Page, error) {
	if pageAPIPath == "" {
		pageAPIPath = domain.DefaultPageAPIPath
	}
	pages, err := getOrAdd(ctx, p, keyPrefixPages+pageAPIPath, p.ttl.PagesTTL, func(ctx context.Context) ([]domain.Page, error) {
		return p.source.FetchPages(ctx, pageAPIPath)
	})
	if err != nil {
		return nil, err
	}

	lang := p.cmsLanguage(languageCode)
	filtered := make([]domain.Page, 0, len(pages))
	for _, page := range pages {
		if p.linkLanguage(page.Link) == lang {
			filtered = append(filtered, page)
		}
	}
	return filtered, nil
}

func (p *Proxy) GetPage(ctx context.Context, pageID int, pageAPIPath string) (*domain.Page, error) {
	return getOrAdd(ctx, p, keyPrefixPage+strconv.Itoa(pageID), p.ttl.PageTTL, func(ctx context.Context) (*domain.Page, error) {
		return p.source.FetchPage(ctx, pageID, pageAPIPath)
	})
}

func (p *Proxy) RemovePageCache(ctx context.Context, pageID int) error {
	return p.cache.Delete(ctx, keyPrefixPage+strconv.Itoa(pageID))
}

func (p *Proxy) RemovePagesCache(ctx context.Context, pageAPIPath string) error {
	if pageAPIPath == "" {
		pageAPIPath = domain.DefaultPageAPIPath
	}
	return p.cache.Delete(ctx, keyPrefixPages+pageAPIPath)
}

// GetRegions - опубликованные и не скрытые регионы языка или всех языков
func (p *Proxy) GetRegions(ctx context.Context, languageCode string, allLanguages bool) ([]domain.CmsRegion, error) {
	regions, err := getOrAdd(ctx, p, keyRegions, p.ttl.RegionsTTL, p.source.FetchRegions)
	if err != nil {
		return nil, err
	}

	lang := p.cmsLanguage(languageCode)
	filtered := make([]domain.CmsRegion, 0, len(regions))
	for _, r := range regions {
		if r.Status != domain.StatusPublish || r.Hidden() {
			continue
		}
		if !allLanguages && p.linkLanguage(r.Link) != lang {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

func (p *Proxy) GetRegion(ctx context.Context, id int) (*domain.CmsRegion, error) {
	return p.source.FetchRegion(ctx, id)
}

// GetRegionList - пути активного региона и регионы в порядке меню; регионы
// без порядка идут последними
func (p *Proxy) GetRegionList(ctx context.Context, urlPath, languageCode string) (*domain.RegionList, error) {
	regions, err := p.GetRegions(ctx, languageCode, false)
	if err != nil {
		return nil, err
	}

	list := &domain.RegionList{
		PagesAPIPath:    domain.DefaultPageAPIPath,
		BusinessAPIPath: domain.DefaultBusinessAPIPath,
	}
	for _, r := range regions {
		if r.URLPath == urlPath {
			list.PagesAPIPath = r.PagesAPIPath
			list.BusinessAPIPath = r.BusinessesAPIPath
			list.Title = r.Title.Rendered
			break
		}
	}

	sort.SliceStable(regions, func(i, j int) bool {
		a, b := regions[i].MenuOrder, regions[j].MenuOrder
		if (a != nil) != (b != nil) {
			return a != nil
		}
		return a != nil && *a < *b
	})
	list.Regions = regions
	return list, nil
}

func (p *Proxy) GetBusinesses(ctx context.Context, businessAPIPath string) ([]domain.CmsBusiness, error) {
	return p.source.FetchBusinesses(ctx, businessAPIPath)
}

func (p *Proxy) GetBusiness(ctx context.Context, id int, businessAPIPath string) (*domain.CmsBusiness, error) {
	return p.source.FetchBusiness(ctx, id, businessAPIPath)
}

func (p *Proxy) GetPageTypes(ctx context.Context) ([]domain.PageType, error) {
	return getOrAdd(ctx, p, keyPageTypes, p.ttl.PageTypesTTL, p.source.FetchPageTypes)
}

func (p *Proxy) GetMediaList(ctx context.Context) ([]domain.Media, error) {
	return getOrAdd(ctx, p, keyMediaList, p.ttl.MediaTTL, p.source.FetchMediaList)
}

func (p *Proxy) GetTag(ctx context.Context, id int) (*domain.CmsTag, error) {
	return p.source.FetchTag(ctx, id)
}

// GetTags - опубликованные теги языка, без кеша
func (p *Proxy) GetTags(ctx context.Context, languageCode string) ([]domain.CmsTag, error) {
	tags, err := p.source.FetchTags(ctx)
	if err != nil {
		return nil, err
	}

	lang := p.cmsLanguage(languageCode)
	filtered := make([]domain.CmsTag, 0, len(tags))
	for _, t := range tags {
		if t.Status == domain.StatusPublish && p.linkLanguage(t.Link) == lang {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (p *Proxy) GetTagGroups(ctx context.Context) ([]domain.TagGroup, error) {
	return getOrAdd(ctx, p, keyTagGroups, p.ttl.TagGroupsTTL, p.source.FetchTagGroups)
}
