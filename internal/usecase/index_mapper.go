package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/repository"
)

var (
	errRegionNotFound   = errors.New("region of business not found")
	errPageTypeNotFound = errors.New("business page type not found")
)

// mappingContext - справочники CMS, нужные для преобразования постов в документы индекса
type mappingContext struct {
	regions          []domain.CmsRegion
	businessPageType *domain.PageType
	media            map[int]domain.Media
	languages        []domain.Language
	defaultLanguage  string
	cmsBaseURL       string
}

func loadMappingContext(ctx context.Context, content repository.ContentRepository, cmsBaseURL string) (*mappingContext, error) {
	languages, err := content.GetLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("get languages: %w", err)
	}
	regions, err := content.GetRegions(ctx, "", true)
	if err != nil {
		return nil, fmt.Errorf("get regions: %w", err)
	}
	pageTypes, err := content.GetPageTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("get page types: %w", err)
	}
	mediaList, err := content.GetMediaList(ctx)
	if err != nil {
		return nil, fmt.Errorf("get media: %w", err)
	}

	mc := &mappingContext{
		regions:         regions,
		media:           make(map[int]domain.Media, len(mediaList)),
		languages:       languages,
		defaultLanguage: domain.DefaultLanguage(languages),
		cmsBaseURL:      cmsBaseURL,
	}
	for _, pt := range pageTypes {
		if pt.TypeName == domain.BusinessPageTypeName {
			pt := pt
			mc.businessPageType = &pt
			break
		}
	}
	for _, m := range mediaList {
		mc.media[m.ID] = m
	}
	return mc, nil
}

func (mc *mappingContext) region(id int) (domain.CmsRegion, bool) {
	for _, r := range mc.regions {
		if r.ID == id {
			return r, true
		}
	}
	return domain.CmsRegion{}, false
}

func (mc *mappingContext) language(link string) string {
	if code := domain.LanguageFromLink(mc.languages, link); code != "" {
		return code
	}
	return mc.defaultLanguage
}

// detailPageLink: /{lang}/{region}/{slug}; язык по умолчанию и регион global
// в ссылку не попадают
func (mc *mappingContext) detailPageLink(languageCode, regionURLPath, slug string) string {
	var b strings.Builder
	if languageCode != mc.defaultLanguage {
		b.WriteString("/" + languageCode)
	}
	b.WriteString("/")
	if regionURLPath != "" && regionURLPath != domain.GlobalURLPath {
		b.WriteString(regionURLPath + "/")
	}
	b.WriteString(slug)
	return b.String()
}

func (mc *mappingContext) imageURL(u string) string {
	if u == "" || strings.Contains(u, "http") {
		return u
	}
	return mc.cmsBaseURL + u
}

func (mc *mappingContext) singleImage(u string, media *domain.Media, size string) *domain.SingleImage {
	img := &domain.SingleImage{URL: mc.imageURL(u)}
	if media != nil {
		if s, ok := media.Size(size); ok {
			w, h := s.Width, s.Height
			img.Width, img.Height = &w, &h
		}
	}
	return img
}

// business преобразует пост CMS в документ индекса
func (mc *mappingContext) business(m domain.CmsBusiness) (domain.Business, error) {
	cityID := m.Acf.CityID()
	region, ok := mc.region(cityID)
	if !ok {
		return domain.Business{}, fmt.Errorf("business %d city %d: %w", m.ID, cityID, errRegionNotFound)
	}
	if mc.businessPageType == nil {
		return domain.Business{}, fmt.Errorf("business %d: %w", m.ID, errPageTypeNotFound)
	}

	languageCode := mc.language(m.Link)

	tags := make([]string, 0)
	for _, t := range m.AllTags() {
		tags = append(tags, html.UnescapeString(t))
	}

	addresses := make([]domain.AddressAndCoordinate, 0, len(m.AddressAndCoordinate))
	for _, a := range m.AddressAndCoordinate {
		addresses = append(addresses, domain.AddressAndCoordinate{
			Latitude:  a.Latitude,
			Longitude: a.Longitude,
			Address:   a.PostTitle,
		})
	}

	onlineOnly := m.Acf.IsOnlineOnly()
	b := domain.Business{
		ID:                    m.ID,
		Created:               m.Date.Time,
		LastUpdated:           m.Modified.Time,
		DetailPageLink:        mc.detailPageLink(languageCode, region.URLPath, m.Slug),
		Header:                html.UnescapeString(m.Title.Rendered),
		LanguageCode:          languageCode,
		Tags:                  tags,
		OnlineOnly:            &onlineOnly,
		OpeningHours:          m.Acf.OpeningHours(),
		City:                  &domain.IDAndName{ID: cityID, Name: html.UnescapeString(region.Title.Rendered)},
		PageType:              &domain.IDAndName{ID: mc.businessPageType.ID, Name: mc.businessPageType.TemplateName},
		AddressAndCoordinates: addresses,
		VisibleForCities:      m.VisibleForRegions,
	}

	if acf := m.Acf; acf != nil {
		b.Description = acf.Description
		b.ShortDescription = acf.ShortDescription
		b.Phone = acf.Phone
		b.Email = acf.Email
		b.Area = acf.Area
		b.FacebookURL = acf.FacebookURL
		b.WebsiteURL = acf.WebsiteURL
		b.InstagramUsername = acf.InstagramUsername

		if img := acf.MainImage; img != nil {
			var media *domain.Media
			if found, ok := mc.media[img.ID]; ok {
				media = &found
			}
			imageID := img.ID
			b.Image = &domain.Image{
				ImageID:     &imageID,
				AltText:     img.Alt,
				Thumbnail:   mc.singleImage(img.Sizes.Thumbnail, media, "thumbnail"),
				Medium:      mc.singleImage(img.Sizes.Medium, media, "medium"),
				MediumLarge: mc.singleImage(img.Sizes.MediumLarge, media, "medium_large"),
				Large:       mc.singleImage(img.Sizes.Large, media, "large"),
			}
			if media != nil {
				b.Image.HTML = media.Description.Rendered
			}
		}
	}

	return b, nil
}

func mapRegion(m domain.CmsRegion) domain.Region {
	menuOrder := 0
	if m.MenuOrder != nil {
		menuOrder = *m.MenuOrder
	}
	return domain.Region{
		ID:                m.ID,
		Name:              html.UnescapeString(m.Title.Rendered),
		LanguageCode:      m.LanguageCode,
		Hidden:            m.Hidden(),
		WelcomeMessage:    m.WelcomeMessage,
		Modified:          m.Modified,
		URLPath:           m.URLPath,
		BusinessesAPIPath: m.BusinessesAPIPath,
		PagesAPIPath:      m.PagesAPIPath,
		MenuOrder:         menuOrder,
	}
}

func mapTag(m domain.CmsTag, languages []domain.Language) domain.Tag {
	languageCode := domain.LanguageFromLink(languages, m.Link)
	if languageCode == "" {
		languageCode = domain.DefaultLanguage(languages)
	}
	return domain.Tag{
		ID:           m.ID,
		Name:         html.UnescapeString(m.Title.Rendered),
		Slug:         m.Slug,
		LanguageCode: languageCode,
		TagGroupID:   m.Grupp,
	}
}
