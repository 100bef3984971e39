package handler_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/delivery/http/handler"
	"github.com/smartmap-web/internal/domain"
	apperrors "github.com/smartmap-web/internal/pkg/errors"
	"github.com/smartmap-web/internal/usecase/dto"
)

type fakeResolver struct {
	got   domain.RouteSegments
	route *domain.Route
	err   error
}

func (f *fakeResolver) GetRouteValue(_ context.Context, segments domain.RouteSegments) (*domain.Route, error) {
	f.got = segments
	return f.route, f.err
}

type fakeSite struct {
	sitemap    []byte
	sitemapErr error
	content    *dto.PageResponse
	contentErr error
	robotsHost string
}

func (f *fakeSite) RobotsTxt(host string) string {
	f.robotsHost = host
	return "User-agent: *\nAllow: /\n"
}

func (f *fakeSite) SitemapXML(context.Context) ([]byte, error) {
	return f.sitemap, f.sitemapErr
}

func (f *fakeSite) GetPageContent(_ context.Context, route domain.Route) (*dto.PageResponse, error) {
	if f.content != nil {
		f.content.Route = route
	}
	return f.content, f.contentErr
}

func newPageApp(resolver handler.RouteResolver, site handler.SiteService) *fiber.App {
	h := handler.NewPageHandler(resolver, site, zap.NewNop())
	app := fiber.New()
	app.Get("/:language?/:region?/:page?", h.Dispatch)
	return app
}

func TestPageHandler_PassesSegments(t *testing.T) {
	resolver := &fakeResolver{route: &domain.Route{Handler: "AboutPage", Action: domain.ActionIndex, ContentID: 42}}
	site := &fakeSite{content: &dto.PageResponse{Title: "Om oss"}}

	status, env, _ := doRequest(t, newPageApp(resolver, site), "GET", "/sv/goteborg/om-oss", "", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, domain.RouteSegments{Language: "sv", Region: "goteborg", Page: "om-oss"}, resolver.got)
	assert.Contains(t, string(env.Data), `"title":"Om oss"`)
	assert.Contains(t, string(env.Data), `"contentId":42`)
}

func TestPageHandler_EmptyPath(t *testing.T) {
	resolver := &fakeResolver{route: &domain.Route{Handler: domain.HandlerHome, Action: domain.ActionIndex, ContentID: domain.NoContentID}}
	site := &fakeSite{content: &dto.PageResponse{WelcomeMessage: "Välkommen"}}

	status, _, _ := doRequest(t, newPageApp(resolver, site), "GET", "/", "", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, resolver.got.IsEmpty())
}

func TestPageHandler_RobotsTxt(t *testing.T) {
	resolver := &fakeResolver{route: &domain.Route{Handler: domain.HandlerHome, Action: domain.ActionRobotsTxt}}
	site := &fakeSite{}
	app := newPageApp(resolver, site)

	req := httptest.NewRequest("GET", "http://www.smartakartan.se/robots.txt", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	assert.Equal(t, "www.smartakartan.se", site.robotsHost)
}

func TestPageHandler_SitemapXML(t *testing.T) {
	resolver := &fakeResolver{route: &domain.Route{Handler: domain.HandlerHome, Action: domain.ActionSitemapXML}}
	site := &fakeSite{sitemap: []byte("<urlset></urlset>")}

	resp, err := newPageApp(resolver, site).Test(httptest.NewRequest("GET", "/sitemap.xml", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "xml")
}

func TestPageHandler_NotFound(t *testing.T) {
	resolver := &fakeResolver{route: &domain.Route{Handler: domain.HandlerError, Action: domain.ActionNotFound, ContentID: domain.NoContentID}}

	status, env, _ := doRequest(t, newPageApp(resolver, &fakeSite{}), "GET", "/sv/goteborg/saknas", "", nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, apperrors.ErrNotFound.Code, env.Error.Code)
}

func TestPageHandler_UpstreamFailure(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("get pages: cms API error: status 503")}

	status, env, _ := doRequest(t, newPageApp(resolver, &fakeSite{}), "GET", "/om-oss", "", nil)

	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, apperrors.ErrContentSourceFailed.Code, env.Error.Code)
}

func TestPageHandler_ContentMissing(t *testing.T) {
	resolver := &fakeResolver{route: &domain.Route{Handler: "BusinessPage", Action: domain.ActionIndex, ContentID: 555}}
	site := &fakeSite{contentErr: apperrors.ErrNotFound}

	status, _, _ := doRequest(t, newPageApp(resolver, site), "GET", "/cykelkoket", "", nil)

	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHealthHandler(t *testing.T) {
	h := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"search": func(context.Context) error { return nil },
		"redis":  func(context.Context) error { return errors.New("dial tcp: connection refused") },
	}, zap.NewNop())
	app := fiber.New()
	app.Get("/api/health", h.Health)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
