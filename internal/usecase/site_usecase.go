package usecase

import (
	"context"
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/repository"
	"github.com/smartmap-web/internal/pkg/errors"
	"github.com/smartmap-web/internal/usecase/dto"
)

const sitemapCacheKey = "sk-sitemap"

// SiteUseCase - содержимое динамических страниц, robots.txt и sitemap.xml
type SiteUseCase struct {
	content    repository.ContentRepository
	businesses repository.BusinessRepository
	regions    repository.RegionRepository
	cache      repository.CacheRepository
	siteHost   string
	sitemapTTL time.Duration
	logger     *zap.Logger
}

// NewSiteUseCase создает новый SiteUseCase
func NewSiteUseCase(
	content repository.ContentRepository,
	businesses repository.BusinessRepository,
	regions repository.RegionRepository,
	cache repository.CacheRepository,
	siteHost string,
	sitemapTTL time.Duration,
	logger *zap.Logger,
) *SiteUseCase {
	return &SiteUseCase{
		content:    content,
		businesses: businesses,
		regions:    regions,
		cache:      cache,
		siteHost:   siteHost,
		sitemapTTL: sitemapTTL,
		logger:     logger,
	}
}

// RobotsTxt разрешает индексацию всего сайта и указывает sitemap
func (uc *SiteUseCase) RobotsTxt(host string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: https://%s/sitemap.xml\n", host)
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapXML - все регионы, их страницы и все бизнесы; результат кешируется
func (uc *SiteUseCase) SitemapXML(ctx context.Context) ([]byte, error) {
	if cached, err := uc.cache.Get(ctx, sitemapCacheKey); err != nil {
		uc.logger.Warn("Sitemap cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	body, err := uc.buildSitemap(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, sitemapCacheKey, body, uc.sitemapTTL); err != nil {
		uc.logger.Warn("Sitemap cache write failed", zap.Error(err))
	}
	return body, nil
}

func (uc *SiteUseCase) buildSitemap(ctx context.Context) ([]byte, error) {
	regions, err := uc.regions.GetAll(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(regions, func(i, j int) bool { return regions[i].MenuOrder < regions[j].MenuOrder })

	languages, err := uc.content.GetLanguages(ctx)
	if err != nil {
		return nil, err
	}
	defaultLanguage := domain.DefaultLanguage(languages)

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, r := range regions {
		if r.Hidden {
			continue
		}
		langURL := ""
		if r.LanguageCode != defaultLanguage {
			langURL = "/" + r.LanguageCode
		}
		regionSlug := ""
		if r.URLPath != "" && r.URLPath != domain.GlobalURLPath {
			regionSlug = "/" + r.URLPath
		}
		pagesAPIPath := r.PagesAPIPath
		if pagesAPIPath == "" {
			pagesAPIPath = domain.DefaultPageAPIPath
		}

		pages, err := uc.content.GetPages(ctx, r.LanguageCode, pagesAPIPath)
		if err != nil {
			return nil, err
		}

		set.URLs = append(set.URLs, sitemapURL{Loc: uc.siteHost + langURL + regionSlug, LastMod: r.Modified})
		for _, p := range pages {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     uc.siteHost + langURL + regionSlug + "/" + p.Slug,
				LastMod: p.Modified,
			})
		}
	}

	businesses, err := uc.businesses.GetAll(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	for _, b := range businesses {
		u := sitemapURL{Loc: uc.siteHost + b.DetailPageLink}
		if !b.LastUpdated.IsZero() {
			u.LastMod = b.LastUpdated.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}

	uc.logger.Info("Sitemap built", zap.Int("urls", len(set.URLs)))
	return append([]byte(xml.Header), body...), nil
}

// GetPageContent загружает содержимое для разрешённого маршрута
func (uc *SiteUseCase) GetPageContent(ctx context.Context, route domain.Route) (*dto.PageResponse, error) {
	if route.IsNotFound() {
		return nil, errors.ErrNotFound
	}

	resp := &dto.PageResponse{Route: route}

	if route.Handler == domain.HandlerHome {
		regions, err := uc.regions.GetByLanguageCode(ctx, route.Language, false)
		if err != nil {
			return nil, err
		}
		resp.Regions = regions

		for _, r := range regions {
			if (route.Region.Region == "" && r.PagesAPIPath == domain.DefaultPageAPIPath) ||
				(route.Region.Region != "" && r.URLPath == route.Region.Region) {
				resp.Title = r.Name
				resp.WelcomeMessage = r.WelcomeMessage
				break
			}
		}
		return resp, nil
	}

	isBusiness, err := uc.isBusinessTemplate(ctx, route.Handler)
	if err != nil {
		return nil, err
	}

	if isBusiness {
		business, err := uc.businesses.Get(ctx, route.ContentID)
		if err != nil {
			return nil, err
		}
		if business == nil {
			return nil, errors.ErrNotFound
		}
		resp.Business = business
		resp.Title = business.Header
		return resp, nil
	}

	page, err := uc.content.GetPage(ctx, route.ContentID, route.Region.PagesAPIURL)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, errors.ErrNotFound
	}
	resp.Page = page
	resp.Title = page.Title.Rendered
	resp.Content = page.Content.Rendered
	return resp, nil
}

func (uc *SiteUseCase) isBusinessTemplate(ctx context.Context, handler string) (bool, error) {
	pageTypes, err := uc.content.GetPageTypes(ctx)
	if err != nil {
		return false, err
	}
	for _, pt := range pageTypes {
		if pt.TypeName == domain.BusinessPageTypeName {
			return pt.TemplateName == handler, nil
		}
	}
	return false, nil
}
