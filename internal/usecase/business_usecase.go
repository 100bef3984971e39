package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/repository"
	"github.com/smartmap-web/internal/usecase/dto"
)

// BusinessUseCase - API поиска бизнесов для фронтенда
type BusinessUseCase struct {
	businesses   repository.BusinessRepository
	regions      repository.RegionRepository
	tags         repository.TagRepository
	content      repository.ContentRepository
	itemsPerPage int
	logger       *zap.Logger
}

// NewBusinessUseCase создает новый BusinessUseCase
func NewBusinessUseCase(
	businesses repository.BusinessRepository,
	regions repository.RegionRepository,
	tags repository.TagRepository,
	content repository.ContentRepository,
	itemsPerPage int,
	logger *zap.Logger,
) *BusinessUseCase {
	return &BusinessUseCase{
		businesses:   businesses,
		regions:      regions,
		tags:         tags,
		content:      content,
		itemsPerPage: itemsPerPage,
		logger:       logger,
	}
}

// GetBusinesses возвращает страницу бизнесов и фасеты тегов. Фасеты
// подтегов добавляются только когда в запросе есть фильтр по тегам.
func (uc *BusinessUseCase) GetBusinesses(ctx context.Context, req dto.BusinessListRequest) (*dto.BusinessListResponse, error) {
	filter, err := uc.buildFilter(ctx, req)
	if err != nil {
		return nil, err
	}
	filter.From = req.Page * uc.itemsPerPage
	filter.Size = uc.itemsPerPage
	filter.Sorting = req.Sorting
	filter.RandomSeed = req.RandomSeed

	result, err := uc.businesses.GetBusinesses(ctx, filter)
	if err != nil {
		return nil, err
	}

	filterTags, err := uc.facetTags(ctx, domain.MainTagGroupSlug, domain.TagTypeMain, result.TagCounts, filter.LanguageCode)
	if err != nil {
		return nil, err
	}
	if len(req.Tags) > 0 {
		subTags, err := uc.facetTags(ctx, domain.SubTagGroupSlug, domain.TagTypeSub, result.TagCounts, filter.LanguageCode)
		if err != nil {
			return nil, err
		}
		filterTags = append(filterTags, subTags...)
	}

	items := make([]dto.BusinessItem, 0, len(result.Items))
	for _, hit := range result.Items {
		items = append(items, toBusinessItem(hit.Business))
	}

	return &dto.BusinessListResponse{
		Items:        items,
		Total:        result.Total,
		ItemsPerPage: uc.itemsPerPage,
		FilterTags:   filterTags,
	}, nil
}

// GetCoordinates - все точки бизнесов с теми же фильтрами, без пагинации
func (uc *BusinessUseCase) GetCoordinates(ctx context.Context, req dto.BusinessListRequest) ([]dto.BusinessCoordinateItem, error) {
	filter, err := uc.buildFilter(ctx, req)
	if err != nil {
		return nil, err
	}

	coordinates, err := uc.businesses.GetAllBusinessCoordinates(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BusinessCoordinateItem, 0, len(coordinates))
	for _, c := range coordinates {
		items = append(items, dto.BusinessCoordinateItem{
			ID:                    c.ID,
			DetailPageLink:        c.DetailPageLink,
			Header:                c.Header,
			Description:           c.ShortDescription,
			AddressAndCoordinates: c.AddressAndCoordinates,
		})
	}
	return items, nil
}

// GetTranslations - тексты интерфейса языка; ключ - заголовок в нижнем регистре
func (uc *BusinessUseCase) GetTranslations(ctx context.Context, lang string) ([]dto.TranslationItem, error) {
	lang = languageOrDefault(lang)

	translations, err := uc.content.GetTranslations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get translations: %w", err)
	}

	items := make([]dto.TranslationItem, 0)
	for _, t := range translations {
		if t.LanguageCode != lang {
			continue
		}
		items = append(items, dto.TranslationItem{
			Key:   strings.ToLower(t.Title.Rendered),
			Value: t.TranslationText,
		})
	}
	return items, nil
}

// GetTransactionTags возвращает теги группы transaktionsform; found=false,
// если группы нет в CMS
func (uc *BusinessUseCase) GetTransactionTags(ctx context.Context, lang string) ([]dto.TagItem, bool, error) {
	groups, err := uc.content.GetTagGroups(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("get tag groups: %w", err)
	}
	group, ok := domain.FindTagGroup(groups, domain.TransactionTagGroupSlug)
	if !ok {
		return nil, false, nil
	}

	tags, err := uc.tags.GetByLanguageCode(ctx, languageOrDefault(lang))
	if err != nil {
		return nil, false, err
	}

	items := make([]dto.TagItem, 0)
	for _, t := range groupTags(tags, group) {
		items = append(items, dto.TagItem{ID: t.ID, Name: t.Name})
	}
	return items, true, nil
}

func (uc *BusinessUseCase) buildFilter(ctx context.Context, req dto.BusinessListRequest) (domain.BusinessFilter, error) {
	languageCode := languageOrDefault(req.Lang)

	regionIDs, err := uc.regionIDs(ctx, languageCode, req.Region)
	if err != nil {
		return domain.BusinessFilter{}, err
	}

	var digital *bool
	if req.Digital {
		digital = &req.Digital
	}

	return domain.BusinessFilter{
		Query:           req.Query,
		Tags:            req.Tags,
		TransactionTags: req.TransactionTags,
		RegionIDs:       regionIDs,
		Digital:         digital,
		OpenNow:         req.OpenNow,
		LanguageCode:    languageCode,
	}, nil
}

// regionIDs - id региона по имени, или все регионы языка. Неизвестное имя
// расширяет поиск до всех регионов языка.
func (uc *BusinessUseCase) regionIDs(ctx context.Context, languageCode, regionName string) ([]int, error) {
	regions, err := uc.regions.GetByLanguageCode(ctx, languageCode, false)
	if err != nil {
		return nil, fmt.Errorf("get regions: %w", err)
	}

	if regionName == "" {
		return domain.RegionIDs(regions), nil
	}

	region, ok := domain.FindRegionByName(regions, regionName)
	if !ok {
		uc.logger.Warn("Unknown region in business request, searching all regions",
			zap.String("region", regionName),
			zap.String("language", languageCode))
		return domain.RegionIDs(regions), nil
	}
	return []int{region.ID}, nil
}

// facetTags сопоставляет теги группы с корзинами агрегации по имени
func (uc *BusinessUseCase) facetTags(
	ctx context.Context,
	groupSlug, tagType string,
	buckets []domain.TagBucket,
	languageCode string,
) ([]dto.TagItem, error) {
	groups, err := uc.content.GetTagGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tag groups: %w", err)
	}
	group, ok := domain.FindTagGroup(groups, groupSlug)
	if !ok {
		return []dto.TagItem{}, nil
	}

	tags, err := uc.tags.GetByLanguageCode(ctx, languageCode)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		counts[b.Key] = b.DocCount
	}

	items := make([]dto.TagItem, 0)
	seen := make(map[string]bool)
	for _, t := range groupTags(tags, group) {
		count, ok := counts[t.Name]
		if !ok || seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		items = append(items, dto.TagItem{ID: t.ID, Name: t.Name, Count: count, Type: tagType})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Name > items[j].Name })
	return items, nil
}

func groupTags(tags []domain.Tag, group domain.TagGroup) []domain.Tag {
	ids := make(map[int]bool, len(group.Taggar))
	for _, id := range group.Taggar {
		ids[id] = true
	}

	result := make([]domain.Tag, 0)
	for _, t := range tags {
		if ids[t.ID] {
			result = append(result, t)
		}
	}
	return result
}

func toBusinessItem(b domain.Business) dto.BusinessItem {
	item := dto.BusinessItem{
		ID:                    b.ID,
		DetailPageLink:        b.DetailPageLink,
		Header:                b.Header,
		Description:           b.ShortDescription,
		Area:                  b.Area,
		OnlineOnly:            b.OnlineOnly != nil && *b.OnlineOnly,
		Tags:                  b.Tags,
		AddressAndCoordinates: b.AddressAndCoordinates,
	}
	if b.City != nil {
		item.City = b.City.Name
	}
	if b.Image != nil {
		item.ImageHTML = b.Image.HTML
		item.ImageAlt = b.Image.AltText
		if b.Image.Thumbnail != nil {
			item.ImageURL = b.Image.Thumbnail.URL
		}
	}
	item.HasImage = item.ImageURL != ""
	return item
}

func languageOrDefault(lang string) string {
	if lang == "" {
		return domain.DefaultLanguageCode
	}
	return lang
}
