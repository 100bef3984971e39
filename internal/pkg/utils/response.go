package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartmap-web/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// Meta - пагинация списка бизнесов; page считается с нуля
type Meta struct {
	Total        int     `json:"total,omitempty"`
	Page         int     `json:"page,omitempty"`
	ItemsPerPage int     `json:"items_per_page,omitempty"`
	TimeMSec     float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendCreated - 201 с Location созданного документа индекса
func SendCreated(c *fiber.Ctx, location string, data interface{}) error {
	c.Location(location)
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Data: data})
}

// SendAccepted - 202 для задач, поставленных в очередь
func SendAccepted(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusAccepted).JSON(SuccessResponse{Data: data})
}

func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// SendError отвечает статусом AppError; отмена запроса клиентом даёт 499,
// неизвестные ошибки скрываются за 500
func SendError(c *fiber.Ctx, err error) error {
	err = errors.FromContext(err)

	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
