package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/pkg/errors"
	"github.com/smartmap-web/internal/pkg/utils"
	"github.com/smartmap-web/internal/usecase/dto"
)

// RouteResolver - разбор динамического пути
type RouteResolver interface {
	GetRouteValue(ctx context.Context, segments domain.RouteSegments) (*domain.Route, error)
}

// SiteService - содержимое страниц, robots.txt и sitemap.xml
type SiteService interface {
	RobotsTxt(host string) string
	SitemapXML(ctx context.Context) ([]byte, error)
	GetPageContent(ctx context.Context, route domain.Route) (*dto.PageResponse, error)
}

// PageHandler - catch-all маршрут /{language?}/{region?}/{page?}
type PageHandler struct {
	routeUC RouteResolver
	siteUC  SiteService
	logger  *zap.Logger
}

// NewPageHandler - создание нового PageHandler
func NewPageHandler(routeUC RouteResolver, siteUC SiteService, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		routeUC: routeUC,
		siteUC:  siteUC,
		logger:  logger,
	}
}

// Dispatch godoc
// @Summary Динамическая страница
// @Description Разбирает позиционные сегменты пути и отдаёт robots.txt, sitemap.xml или JSON с маршрутом и содержимым страницы
// @Tags Pages
// @Produce json,xml,plain
// @Param language path string false "Язык, регион или страница"
// @Param region path string false "Регион или страница"
// @Param page path string false "Страница"
// @Success 200 {object} utils.SuccessResponse{data=dto.PageResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /{language}/{region}/{page} [get]
func (h *PageHandler) Dispatch(c *fiber.Ctx) error {
	segments := domain.RouteSegments{
		Language: c.Params("language"),
		Region:   c.Params("region"),
		Page:     c.Params("page"),
	}

	route, err := h.routeUC.GetRouteValue(c.UserContext(), segments)
	if err != nil {
		h.logger.Error("Route resolution failed", zap.String("path", c.Path()), zap.Error(err))
		return utils.SendError(c, upstreamError(err, errors.ErrContentSourceFailed))
	}

	switch route.Action {
	case domain.ActionRobotsTxt:
		c.Type("txt", "utf-8")
		return c.SendString(h.siteUC.RobotsTxt(c.Hostname()))

	case domain.ActionSitemapXML:
		body, err := h.siteUC.SitemapXML(c.UserContext())
		if err != nil {
			h.logger.Error("Sitemap failed", zap.Error(err))
			return utils.SendError(c, upstreamError(err, errors.ErrContentSourceFailed))
		}
		c.Type("xml", "utf-8")
		return c.Send(body)

	case domain.ActionNotFound:
		return utils.SendError(c, errors.ErrNotFound.WithMessage("Page not found: "+c.Path()))
	}

	content, err := h.siteUC.GetPageContent(c.UserContext(), *route)
	if err != nil {
		return utils.SendError(c, upstreamError(err, errors.ErrContentSourceFailed))
	}
	return utils.SendSuccess(c, content, nil)
}
