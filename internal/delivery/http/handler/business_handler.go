package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/pkg/errors"
	"github.com/smartmap-web/internal/pkg/utils"
	"github.com/smartmap-web/internal/pkg/validator"
	"github.com/smartmap-web/internal/usecase/dto"
)

// translationCacheControl - переводы меняются редко, браузер может держать их час
const translationCacheControl = "public,max-age=3600,must-revalidate"

// BusinessService - операции поиска бизнесов, нужные обработчику
type BusinessService interface {
	GetBusinesses(ctx context.Context, req dto.BusinessListRequest) (*dto.BusinessListResponse, error)
	GetCoordinates(ctx context.Context, req dto.BusinessListRequest) ([]dto.BusinessCoordinateItem, error)
	GetTranslations(ctx context.Context, lang string) ([]dto.TranslationItem, error)
	GetTransactionTags(ctx context.Context, lang string) ([]dto.TagItem, bool, error)
}

// BusinessHandler - API каталога бизнесов для фронтенда карты
type BusinessHandler struct {
	businessUC BusinessService
	logger     *zap.Logger
}

// NewBusinessHandler - создание нового BusinessHandler
func NewBusinessHandler(businessUC BusinessService, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessUC: businessUC,
		logger:     logger,
	}
}

// GetBusinesses godoc
// @Summary Поиск бизнесов
// @Description Страница бизнесов (12 на страницу) с фасетами тегов и общим количеством. Фильтры: текст, теги (все должны совпасть), формы транзакций (любая), регион, язык, только цифровые, открыто сейчас.
// @Tags Business
// @Produce json
// @Param query query string false "Текстовый запрос"
// @Param tags query string false "Теги через запятую"
// @Param transactionTags query string false "Формы транзакций через запятую"
// @Param region query string false "Имя или url path региона"
// @Param lang query string false "Код языка" default(sv)
// @Param digital query bool false "Только онлайн"
// @Param openNow query bool false "Открыто сейчас"
// @Param sorting query string false "Random, LatestAdded, LatestUpdated, HeaderDesc, HeaderAsc или число 0-4"
// @Param randomSeed query int false "Seed случайной сортировки"
// @Param page query int false "Номер страницы с нуля" default(0)
// @Success 200 {object} utils.SuccessResponse{data=dto.BusinessListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/business [get]
func (h *BusinessHandler) GetBusinesses(c *fiber.Ctx) error {
	req, err := parseBusinessListRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.businessUC.GetBusinesses(c.UserContext(), req)
	if err != nil {
		h.logger.Error("Business search failed", zap.Error(err))
		return utils.SendError(c, upstreamError(err, errors.ErrSearchFailed))
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:        int(result.Total),
		Page:         req.Page,
		ItemsPerPage: result.ItemsPerPage,
	})
}

// GetCoordinates godoc
// @Summary Координаты бизнесов
// @Description Все бизнесы с адресами по тем же фильтрам, без пагинации
// @Tags Business
// @Produce json
// @Param query query string false "Текстовый запрос"
// @Param tags query string false "Теги через запятую"
// @Param transactionTags query string false "Формы транзакций через запятую"
// @Param region query string false "Имя или url path региона"
// @Param lang query string false "Код языка" default(sv)
// @Param digital query bool false "Только онлайн"
// @Param openNow query bool false "Открыто сейчас"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusinessCoordinateItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/business/coordinates [get]
func (h *BusinessHandler) GetCoordinates(c *fiber.Ctx) error {
	req, err := parseBusinessListRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	items, err := h.businessUC.GetCoordinates(c.UserContext(), req)
	if err != nil {
		h.logger.Error("Business coordinates search failed", zap.Error(err))
		return utils.SendError(c, upstreamError(err, errors.ErrSearchFailed))
	}

	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}

// GetTranslations godoc
// @Summary Тексты интерфейса
// @Tags Business
// @Produce json
// @Param lang query string false "Код языка" default(sv)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TranslationItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/business/translation [get]
func (h *BusinessHandler) GetTranslations(c *fiber.Ctx) error {
	req := dto.LanguageRequest{Lang: c.Query("lang")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	items, err := h.businessUC.GetTranslations(c.UserContext(), req.Lang)
	if err != nil {
		return utils.SendError(c, upstreamError(err, errors.ErrContentSourceFailed))
	}

	c.Set(fiber.HeaderCacheControl, translationCacheControl)
	return utils.SendSuccess(c, items, nil)
}

// GetTransactionTags godoc
// @Summary Теги форм транзакций
// @Description 204, если группа transaktionsform отсутствует в CMS
// @Tags Business
// @Produce json
// @Param lang query string false "Код языка" default(sv)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TagItem}
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/business/transactiontags [get]
func (h *BusinessHandler) GetTransactionTags(c *fiber.Ctx) error {
	req := dto.LanguageRequest{Lang: c.Query("lang")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	items, found, err := h.businessUC.GetTransactionTags(c.UserContext(), req.Lang)
	if err != nil {
		return utils.SendError(c, upstreamError(err, errors.ErrContentSourceFailed))
	}
	if !found {
		return utils.SendNoContent(c)
	}

	return utils.SendSuccess(c, items, nil)
}

func parseBusinessListRequest(c *fiber.Ctx) (dto.BusinessListRequest, error) {
	sorting, err := domain.ParseBusinessSorting(c.Query("sorting"))
	if err != nil {
		return dto.BusinessListRequest{}, errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	var seed int64
	if raw := c.Query("randomSeed"); raw != "" {
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return dto.BusinessListRequest{}, errors.ErrInvalidRequest.WithMessage("randomSeed must be an integer")
		}
	}

	req := dto.BusinessListRequest{
		Page:            c.QueryInt("page", 0),
		Query:           c.Query("query"),
		Tags:            queryList(c, "tags"),
		TransactionTags: queryList(c, "transactionTags"),
		Region:          c.Query("region"),
		Lang:            c.Query("lang"),
		Digital:         c.QueryBool("digital", false),
		OpenNow:         c.QueryBool("openNow", false),
		RandomSeed:      seed,
		Sorting:         sorting,
	}
	if err := validator.Validate(&req); err != nil {
		return dto.BusinessListRequest{}, err
	}
	return req, nil
}

// queryList собирает значения параметра: повторы и списки через запятую
func queryList(c *fiber.Ctx, name string) []string {
	var values []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(name) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

// upstreamError оборачивает сбой индекса или CMS в fallback; AppError и
// отмена запроса проходят как есть
func upstreamError(err error, fallback *errors.AppError) error {
	err = errors.FromContext(err)
	if _, ok := errors.As(err); ok {
		return err
	}
	return fallback.WithDetails(map[string]interface{}{"cause": err.Error()})
}
