package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/repository"
)

// RouteUseCase - разбор динамического пути /{language?}/{region?}/{page?}
type RouteUseCase struct {
	content    repository.ContentRepository
	businesses repository.BusinessRepository
	regions    repository.RegionRepository
	logger     *zap.Logger
}

// NewRouteUseCase создает новый RouteUseCase
func NewRouteUseCase(
	content repository.ContentRepository,
	businesses repository.BusinessRepository,
	regions repository.RegionRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		content:    content,
		businesses: businesses,
		regions:    regions,
		logger:     logger,
	}
}

// GetRouteValue определяет обработчик и id контента для сегментов пути.
//
// Сегменты позиционные: значение в слоте языка может оказаться регионом или
// страницей. Неизвестный язык сдвигает сегменты вправо (язык -> регион ->
// страница), неизвестный регион становится страницей. Отсутствие совпадений
// не ошибка: результатом будет обработчик Error с действием Error404.
// Ошибку возвращают только CMS и поисковый индекс.
func (uc *RouteUseCase) GetRouteValue(ctx context.Context, segments domain.RouteSegments) (*domain.Route, error) {
	uc.logger.Info("Requested url path",
		zap.String("route_type", routeType(segments.Language)),
		zap.String("path", strings.Join([]string{segments.Language, segments.Region, segments.Page}, "/")))

	if segments.IsEmpty() {
		return homeRoute(domain.ActionIndex), nil
	}

	switch segments.Language {
	case domain.RobotsTxtSegment:
		return homeRoute(domain.ActionRobotsTxt), nil
	case domain.SitemapXMLSegment:
		return homeRoute(domain.ActionSitemapXML), nil
	}

	language, regionName, page := segments.Language, segments.Region, segments.Page

	languages, err := uc.content.GetLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("get languages: %w", err)
	}
	if !domain.IsKnownLanguage(languages, language) {
		uc.logger.Debug("Language segment is not a language, shifting",
			zap.Bool("language_shifted", true),
			zap.String("segment", language))
		page = regionName
		regionName = language
		language = ""
	}

	regions, err := uc.regions.GetByLanguageCode(ctx, language, false)
	if err != nil {
		return nil, fmt.Errorf("get regions: %w", err)
	}
	// nil means the region index is empty; the region segment then stays as is
	if _, ok := domain.FindRegionByURLPath(regions, regionName); !ok && regions != nil {
		if regionName != "" {
			uc.logger.Debug("Region segment is not a region, shifting",
				zap.Bool("region_shifted", true),
				zap.String("segment", regionName))
		}
		page = regionName
		regionName = ""
	}

	regionValue := domain.RegionValue{
		Region:         regionName,
		PagesAPIURL:    domain.DefaultPageAPIPath,
		BusinessAPIURL: domain.DefaultBusinessAPIPath,
	}
	if region, ok := domain.FindRegionByURLPath(regions, regionName); ok {
		regionValue.PagesAPIURL = region.PagesAPIPath
		regionValue.BusinessAPIURL = region.BusinessesAPIPath
	}

	handler, contentID, err := uc.Resolve(ctx, language, page, regionName, regions)
	if err != nil {
		return nil, err
	}

	route := &domain.Route{
		Handler:   handler,
		Action:    domain.ActionIndex,
		ContentID: contentID,
		Language:  language,
		Region:    regionValue,
	}
	if handler == domain.HandlerError {
		route.Action = domain.ActionNotFound
	}
	return route, nil
}

// Resolve находит обработчик для сегмента страницы: сначала страница CMS по
// slug, затем бизнес, чья ссылка заканчивается на /slug.
func (uc *RouteUseCase) Resolve(
	ctx context.Context,
	language, routePage, routeRegion string,
	regions []domain.Region,
) (string, int, error) {
	if routePage == "" {
		return domain.HandlerHome, domain.NoContentID, nil
	}

	normalizedPage := strings.ToLower(routePage)

	pagesAPIPath := domain.DefaultPageAPIPath
	if region, ok := domain.FindRegionByURLPath(regions, routeRegion); ok {
		pagesAPIPath = region.PagesAPIPath
	}

	pages, err := uc.content.GetPages(ctx, language, pagesAPIPath)
	if err != nil {
		return "", 0, fmt.Errorf("get pages: %w", err)
	}

	handler := ""
	contentID := domain.NoContentID
	for _, p := range pages {
		if p.Slug == normalizedPage {
			handler = p.TemplateName()
			contentID = p.ID
			break
		}
	}

	if handler == "" {
		languageCode := language
		if languageCode == "" {
			languageCode = domain.DefaultLanguageCode
		}

		result, err := uc.businesses.GetBusinesses(ctx, domain.BusinessFilter{
			LanguageCode: languageCode,
			Sorting:      domain.SortRandom,
			From:         0,
			Size:         domain.MaxResultSize,
		})
		if err != nil {
			return "", 0, fmt.Errorf("get businesses: %w", err)
		}

		for _, hit := range result.Items {
			b := hit.Business
			if !b.HasDetailPageSuffix(normalizedPage) {
				continue
			}
			uc.logger.Info("Found business for page segment",
				zap.String("page", normalizedPage),
				zap.String("language", languageCode),
				zap.String("region", routeRegion),
				zap.Int("business_id", b.ID),
				zap.String("url", b.DetailPageLink))
			contentID = b.ID
			handler = b.PageTypeName()
			break
		}
	}

	if handler == "" {
		handler = domain.HandlerError
	}
	return handler, contentID, nil
}

func homeRoute(action string) *domain.Route {
	return &domain.Route{
		Handler:   domain.HandlerHome,
		Action:    action,
		ContentID: domain.NoContentID,
	}
}

func routeType(first string) string {
	if strings.EqualFold(first, "api") {
		return "Api"
	}
	return "Web"
}
