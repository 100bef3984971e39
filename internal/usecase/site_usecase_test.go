package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	apperrors "github.com/smartmap-web/internal/pkg/errors"
	"github.com/smartmap-web/internal/usecase"
)

const testSiteHost = "https://www.smartakartan.se"

func newSiteUseCase(t *testing.T) (*usecase.SiteUseCase, *MockContentRepository, *MockCacheRepository, *indexes) {
	t.Helper()
	content := new(MockContentRepository)
	content.On("GetLanguages", mock.Anything).Return(domain.SupportedLanguages(), nil).Maybe()
	content.On("GetPageTypes", mock.Anything).Return([]domain.PageType{
		{ID: 3, TemplateName: "AboutPage", TypeName: domain.TopMenuPageTypeName},
		{ID: 5, TemplateName: "BusinessPage", TypeName: domain.BusinessPageTypeName},
	}, nil).Maybe()

	cache := new(MockCacheRepository)
	ix := newIndexes(t)
	ix.seedRegions(t, testRegions()...)

	uc := usecase.NewSiteUseCase(content, ix.businesses, ix.regions, cache, testSiteHost, time.Hour, zap.NewNop())
	return uc, content, cache, ix
}

func TestSiteUseCase_RobotsTxt(t *testing.T) {
	uc, _, _, _ := newSiteUseCase(t)

	body := uc.RobotsTxt("www.smartakartan.se")

	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Sitemap: https://www.smartakartan.se/sitemap.xml")
}

func TestSiteUseCase_SitemapXML(t *testing.T) {
	uc, content, cache, ix := newSiteUseCase(t)
	b := catalogBusiness(101, 7)
	b.DetailPageLink = "/goteborg/cykelkoket"
	b.LastUpdated = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	ix.seedBusinesses(t, b)

	content.On("GetPages", mock.Anything, "sv", "goteborg_page").Return([]domain.Page{{ID: 1, Slug: "om-oss", Modified: "2024-01-01T00:00:00"}}, nil)
	content.On("GetPages", mock.Anything, "sv", domain.DefaultPageAPIPath).Return([]domain.Page{{ID: 2, Slug: "kontakt"}}, nil)
	content.On("GetPages", mock.Anything, "en", "goteborg_page").Return([]domain.Page{{ID: 3, Slug: "about"}}, nil)
	cache.On("Get", mock.Anything, "sk-sitemap").Return(nil, nil).Once()
	cache.On("Set", mock.Anything, "sk-sitemap", mock.Anything, time.Hour).Return(nil).Once()

	body, err := uc.SitemapXML(context.Background())
	require.NoError(t, err)

	xml := string(body)
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>https://www.smartakartan.se</loc>")
	assert.Contains(t, xml, "<loc>https://www.smartakartan.se/kontakt</loc>")
	assert.Contains(t, xml, "<loc>https://www.smartakartan.se/goteborg/om-oss</loc>")
	assert.Contains(t, xml, "<loc>https://www.smartakartan.se/en/gothenburg/about</loc>")
	assert.Contains(t, xml, "<loc>https://www.smartakartan.se/goteborg/cykelkoket</loc>")
	assert.Contains(t, xml, "<lastmod>2024-03-05</lastmod>")
	assert.NotContains(t, xml, "dold")
	cache.AssertExpectations(t)
}

func TestSiteUseCase_SitemapXML_Cached(t *testing.T) {
	uc, content, cache, _ := newSiteUseCase(t)
	cache.On("Get", mock.Anything, "sk-sitemap").Return([]byte("<urlset/>"), nil).Once()

	body, err := uc.SitemapXML(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "<urlset/>", string(body))
	content.AssertNotCalled(t, "GetPages", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSiteUseCase_SitemapXML_CacheDown(t *testing.T) {
	uc, content, cache, _ := newSiteUseCase(t)
	content.On("GetPages", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Page{}, nil)
	cache.On("Get", mock.Anything, "sk-sitemap").Return(nil, errors.New("redis down"))
	cache.On("Set", mock.Anything, "sk-sitemap", mock.Anything, time.Hour).Return(errors.New("redis down"))

	body, err := uc.SitemapXML(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(body), "<urlset")
}

func TestSiteUseCase_GetPageContent_Home(t *testing.T) {
	uc, _, _, _ := newSiteUseCase(t)

	tests := []struct {
		name    string
		region  string
		title   string
		welcome string
	}{
		{"no region uses the global region", "", "Global", "Välkommen"},
		{"region by url path", "goteborg", "Göteborg", "Välkommen till Göteborg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.GetPageContent(context.Background(), domain.Route{
				Handler:   domain.HandlerHome,
				Action:    domain.ActionIndex,
				ContentID: domain.NoContentID,
				Language:  "sv",
				Region:    domain.RegionValue{Region: tt.region},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.title, resp.Title)
			assert.Equal(t, tt.welcome, resp.WelcomeMessage)
			assert.Len(t, resp.Regions, 2)
		})
	}
}

func TestSiteUseCase_GetPageContent_Page(t *testing.T) {
	uc, content, _, _ := newSiteUseCase(t)
	page := domain.Page{ID: 42, Title: domain.Rendered{Rendered: "Om oss"}, Content: domain.Rendered{Rendered: "<p>Hej</p>"}}
	content.On("GetPage", mock.Anything, 42, "goteborg_page").Return(&page, nil)

	resp, err := uc.GetPageContent(context.Background(), domain.Route{
		Handler:   "AboutPage",
		Action:    domain.ActionIndex,
		ContentID: 42,
		Region:    domain.RegionValue{Region: "goteborg", PagesAPIURL: "goteborg_page"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Om oss", resp.Title)
	assert.Equal(t, "<p>Hej</p>", resp.Content)
	assert.Same(t, &page, resp.Page)
}

func TestSiteUseCase_GetPageContent_Business(t *testing.T) {
	uc, _, _, ix := newSiteUseCase(t)
	b := catalogBusiness(101, 7)
	b.Header = "Cykelköket"
	ix.seedBusinesses(t, b)

	resp, err := uc.GetPageContent(context.Background(), domain.Route{
		Handler:   "BusinessPage",
		Action:    domain.ActionIndex,
		ContentID: 101,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Business)
	assert.Equal(t, 101, resp.Business.ID)
	assert.Equal(t, "Cykelköket", resp.Title)
}

func TestSiteUseCase_GetPageContent_NotFound(t *testing.T) {
	uc, content, _, _ := newSiteUseCase(t)
	content.On("GetPage", mock.Anything, 77, domain.DefaultPageAPIPath).Return(nil, nil)

	_, err := uc.GetPageContent(context.Background(), domain.Route{Handler: domain.HandlerError, Action: domain.ActionNotFound})
	requireAppError(t, err, apperrors.ErrNotFound)

	_, err = uc.GetPageContent(context.Background(), domain.Route{Handler: "BusinessPage", ContentID: 555})
	requireAppError(t, err, apperrors.ErrNotFound)

	_, err = uc.GetPageContent(context.Background(), domain.Route{
		Handler:   "AboutPage",
		ContentID: 77,
		Region:    domain.RegionValue{PagesAPIURL: domain.DefaultPageAPIPath},
	})
	requireAppError(t, err, apperrors.ErrNotFound)
}
