package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/pkg/errors"
	"github.com/smartmap-web/internal/pkg/utils"
	"github.com/smartmap-web/internal/usecase/dto"
)

// WebhookNameHeader - тип события, который присылает плагин вебхуков CMS
const WebhookNameHeader = "x-wp-webhook-name"

// IndexService - синхронизация индекса, вызываемая вебхуками CMS
type IndexService interface {
	BusinessInsert(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error)
	BusinessUpdate(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error)
	BusinessRemove(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error)
	SyncBusinesses(ctx context.Context) (*dto.SyncResult, error)
	PageUpdate(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error)
	TranslationsUpdate(ctx context.Context) (*dto.WebhookResult, error)
	TagUpdate(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error)
	SyncTags(ctx context.Context) (*dto.SyncResult, error)
	RegionUpdate(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error)
	SyncRegions(ctx context.Context) (*dto.SyncResult, error)
	RequestSync(ctx context.Context, target domain.IndexSyncTarget, reason string) (*domain.IndexSyncEvent, error)
}

// WebhookHandler - вебхуки CMS и ручная пересинхронизация индексов
type WebhookHandler struct {
	indexUC IndexService
	logger  *zap.Logger
}

// NewWebhookHandler - создание нового WebhookHandler
func NewWebhookHandler(indexUC IndexService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		indexUC: indexUC,
		logger:  logger,
	}
}

type webhookFunc func(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error)

type syncFunc func(ctx context.Context) (*dto.SyncResult, error)

// BusinessInsert godoc
// @Summary Вебхук создания бизнеса
// @Tags Webhook
// @Accept json
// @Produce json
// @Param x-wp-webhook-name header string true "post_create"
// @Param request body domain.WebhookPost true "Пост CMS"
// @Success 201 {object} utils.SuccessResponse{data=domain.Business}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security WebhookKeyAuth
// @Router /api/cmswebhook/business/insert [post]
func (h *WebhookHandler) BusinessInsert(c *fiber.Ctx) error {
	return h.handleWebhook(c, "business insert", h.indexUC.BusinessInsert)
}

// BusinessUpdate godoc
// @Summary Вебхук обновления бизнеса
// @Description Пост в корзине удаляется из индекса (204)
// @Tags Webhook
// @Accept json
// @Produce json
// @Param x-wp-webhook-name header string true "post_update"
// @Param request body domain.WebhookPost true "Пост CMS"
// @Success 200 {object} utils.SuccessResponse{data=dto.WebhookResult}
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security WebhookKeyAuth
// @Router /api/cmswebhook/business/update [post]
func (h *WebhookHandler) BusinessUpdate(c *fiber.Ctx) error {
	return h.handleWebhook(c, "business update", h.indexUC.BusinessUpdate)
}

// BusinessRemove godoc
// @Summary Вебхук удаления бизнеса
// @Tags Webhook
// @Accept json
// @Param x-wp-webhook-name header string true "post_delete"
// @Param request body domain.WebhookPost true "Пост CMS"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security WebhookKeyAuth
// @Router /api/cmswebhook/business/remove [post]
func (h *WebhookHandler) BusinessRemove(c *fiber.Ctx) error {
	return h.handleWebhook(c, "business remove", h.indexUC.BusinessRemove)
}

// PageUpdate godoc
// @Summary Вебхук обновления страницы
// @Description Сбрасывает и прогревает кеш страницы и списка страниц её api path
// @Tags Webhook
// @Accept json
// @Produce json
// @Param x-wp-webhook-name header string true "post_update"
// @Param request body domain.WebhookPost true "Пост CMS"
// @Success 200 {object} utils.SuccessResponse{data=dto.WebhookResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security WebhookKeyAuth
// @Router /api/cmswebhook/pages/update [post]
func (h *WebhookHandler) PageUpdate(c *fiber.Ctx) error {
	return h.handleWebhook(c, "page update", h.indexUC.PageUpdate)
}

// TranslationsUpdate godoc
// @Summary Вебхук обновления переводов
// @Tags Webhook
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.WebhookResult}
// @Failure 401 {object} utils.ErrorResponse
// @Security WebhookKeyAuth
// @Router /api/cmswebhook/translations/update [post]
func (h *WebhookHandler) TranslationsUpdate(c *fiber.Ctx) error {
	result, err := h.indexUC.TranslationsUpdate(c.UserContext())
	if err != nil {
		h.logger.Error("Webhook failed", zap.String("webhook", "translations update"), zap.Error(err))
		return utils.SendError(c, upstreamError(err, errors.ErrContentSourceFailed))
	}
	return sendWebhookResult(c, result)
}

// TagUpdate godoc
// @Summary Вебхук тега: вставка, обновление или удаление
// @Tags Webhook
// @Accept json
// @Produce json
// @Param request body domain.WebhookPost true "Пост CMS"
// @Success 200 {object} utils.SuccessResponse{data=dto.WebhookResult}
// @Success 201 {object} utils.SuccessResponse{data=domain.Tag}
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security WebhookKeyAuth
// @Router /api/cmswebhook/tags/update [post]
func (h *WebhookHandler) TagUpdate(c *fiber.Ctx) error {
	return h.handleWebhook(c, "tag update", h.indexUC.TagUpdate)
}

// RegionUpdate godoc
// @Summary Вебхук региона: вставка, обновление или удаление
// @Description После изменения региона в очередь ставится пересинхронизация бизнесов
// @Tags Webhook
// @Accept json
// @Produce json
// @Param request body domain.WebhookPost true "Пост CMS"
// @Success 200 {object} utils.SuccessResponse{data=dto.WebhookResult}
// @Success 201 {object} utils.SuccessResponse{data=domain.Region}
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security WebhookKeyAuth
// @Router /api/cmswebhook/regions/update [post]
func (h *WebhookHandler) RegionUpdate(c *fiber.Ctx) error {
	return h.handleWebhook(c, "region update", h.indexUC.RegionUpdate)
}

// SyncBusinesses godoc
// @Summary Полная пересинхронизация бизнесов
// @Tags Sync
// @Produce json
// @Param SK-ApiKey header string true "API ключ"
// @Success 200 {object} utils.SuccessResponse{data=dto.SyncResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/cmswebhook/business/sync [get]
func (h *WebhookHandler) SyncBusinesses(c *fiber.Ctx) error {
	return h.handleSync(c, domain.SyncBusinesses, h.indexUC.SyncBusinesses)
}

// SyncTags godoc
// @Summary Полная пересинхронизация тегов
// @Tags Sync
// @Produce json
// @Param SK-ApiKey header string true "API ключ"
// @Success 200 {object} utils.SuccessResponse{data=dto.SyncResult}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/cmswebhook/tags/sync [get]
func (h *WebhookHandler) SyncTags(c *fiber.Ctx) error {
	return h.handleSync(c, domain.SyncTags, h.indexUC.SyncTags)
}

// SyncRegions godoc
// @Summary Полная пересинхронизация регионов
// @Tags Sync
// @Produce json
// @Param SK-ApiKey header string true "API ключ"
// @Success 200 {object} utils.SuccessResponse{data=dto.SyncResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/cmswebhook/regions/sync [get]
func (h *WebhookHandler) SyncRegions(c *fiber.Ctx) error {
	return h.handleSync(c, domain.SyncRegions, h.indexUC.SyncRegions)
}

// EnqueueSync godoc
// @Summary Поставить пересинхронизацию в очередь воркера
// @Tags Sync
// @Produce json
// @Param SK-ApiKey header string true "API ключ"
// @Param target path string true "businesses, tags или regions"
// @Success 202 {object} utils.SuccessResponse{data=domain.IndexSyncEvent}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/cmswebhook/sync/{target} [post]
func (h *WebhookHandler) EnqueueSync(c *fiber.Ctx) error {
	target := domain.IndexSyncTarget(c.Params("target"))

	event, err := h.indexUC.RequestSync(c.UserContext(), target, "manual request from "+c.IP())
	if err != nil {
		h.logger.Error("Failed to enqueue index sync", zap.String("target", string(target)), zap.Error(err))
		return utils.SendError(c, upstreamError(err, errors.ErrInternalServer))
	}

	return utils.SendAccepted(c, event)
}

func (h *WebhookHandler) handleWebhook(c *fiber.Ctx, name string, fn webhookFunc) error {
	var post domain.WebhookPost
	if err := c.BodyParser(&post); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("model empty or null."))
	}

	result, err := fn(c.UserContext(), dto.WebhookRequest{
		Name: c.Get(WebhookNameHeader),
		Post: post,
	})
	if err != nil {
		h.logger.Error("Webhook failed",
			zap.String("webhook", name),
			zap.Int("post_id", post.PostID),
			zap.Error(err))
		return utils.SendError(c, upstreamError(err, errors.ErrContentSourceFailed))
	}

	return sendWebhookResult(c, result)
}

func (h *WebhookHandler) handleSync(c *fiber.Ctx, target domain.IndexSyncTarget, fn syncFunc) error {
	result, err := fn(c.UserContext())
	if err != nil {
		h.logger.Error("Index sync failed", zap.String("target", string(target)), zap.Error(err))
		return utils.SendError(c, upstreamError(err, errors.ErrIndexSyncFailed))
	}
	return utils.SendSuccess(c, result, nil)
}

func sendWebhookResult(c *fiber.Ctx, result *dto.WebhookResult) error {
	switch result.Outcome {
	case dto.OutcomeCreated:
		return utils.SendCreated(c, strconv.Itoa(result.ID), result.Document)
	case dto.OutcomeDeleted:
		return utils.SendNoContent(c)
	default:
		return utils.SendSuccess(c, result, nil)
	}
}
