package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/config"
	"github.com/smartmap-web/internal/delivery/http/handler"
	"github.com/smartmap-web/internal/delivery/http/middleware"
	"github.com/smartmap-web/internal/pkg/errors"
	"github.com/smartmap-web/internal/pkg/utils"
)

// Handlers - обработчики, которые регистрирует сервер
type Handlers struct {
	Business *handler.BusinessHandler
	Webhook  *handler.WebhookHandler
	Page     *handler.PageHandler
	Health   *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Site.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Site.Host))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов; catch-all страниц регистрируется последним
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	requestTimeout := middleware.RequestTimeout(s.config.Server.RequestTimeout)
	syncTimeout := middleware.RequestTimeout(s.config.Server.SyncTimeout)

	api := s.app.Group("/api")
	api.Get("/health", requestTimeout, s.handlers.Health.Health)

	business := api.Group("/business", requestTimeout)
	business.Get("/", s.handlers.Business.GetBusinesses)
	business.Get("/coordinates", s.handlers.Business.GetCoordinates)
	business.Get("/translation", s.handlers.Business.GetTranslations)
	business.Get("/transactiontags", s.handlers.Business.GetTransactionTags)

	webhookAuth := middleware.HeaderAuth(s.config.CMS.WebhookKey, s.config.CMS.WebhookValue, s.logger)
	apiKeyAuth := middleware.APIKey(s.config.Auth.APIKey, s.logger)

	hook := api.Group("/cmswebhook")
	hook.Post("/business/insert", webhookAuth, requestTimeout, s.handlers.Webhook.BusinessInsert)
	hook.Post("/business/update", webhookAuth, requestTimeout, s.handlers.Webhook.BusinessUpdate)
	hook.Post("/business/remove", webhookAuth, requestTimeout, s.handlers.Webhook.BusinessRemove)
	hook.Post("/pages/update", webhookAuth, requestTimeout, s.handlers.Webhook.PageUpdate)
	hook.Post("/translations/update", webhookAuth, requestTimeout, s.handlers.Webhook.TranslationsUpdate)
	hook.Post("/tags/update", webhookAuth, requestTimeout, s.handlers.Webhook.TagUpdate)
	hook.Post("/regions/update", webhookAuth, requestTimeout, s.handlers.Webhook.RegionUpdate)

	hook.Get("/business/sync", apiKeyAuth, syncTimeout, s.handlers.Webhook.SyncBusinesses)
	hook.Get("/tags/sync", apiKeyAuth, syncTimeout, s.handlers.Webhook.SyncTags)
	hook.Get("/regions/sync", apiKeyAuth, syncTimeout, s.handlers.Webhook.SyncRegions)
	hook.Post("/sync/:target", apiKeyAuth, requestTimeout, s.handlers.Webhook.EnqueueSync)

	s.app.Get("/:language?/:region?/:page?", requestTimeout, s.handlers.Page.Dispatch)
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (неизвестный маршрут, паника) в формате ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		appErr := errors.ErrInternalServer
		switch code {
		case fiber.StatusNotFound:
			appErr = errors.ErrNotFound
		case fiber.StatusMethodNotAllowed, fiber.StatusBadRequest:
			appErr = errors.ErrInvalidRequest.WithMessage(err.Error())
		}
		return c.Status(code).JSON(utils.ErrorResponse{Error: appErr})
	}
}
