package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/pkg/errors"
	"github.com/smartmap-web/internal/pkg/utils"
)

// APIKeyHeader - заголовок с ключом для ручного запуска синхронизации
const APIKeyHeader = "SK-ApiKey"

// APIKey пропускает запрос только с точным значением ключа в SK-ApiKey
func APIKey(apiKey string, logger *zap.Logger) fiber.Handler {
	return HeaderAuth(APIKeyHeader, apiKey, logger)
}

// HeaderAuth - проверка заголовка name на точное совпадение с value.
// Пустой value закрывает доступ полностью.
func HeaderAuth(name, value string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get(name)
		if value == "" || got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(value)) != 1 {
			logger.Warn("Unauthorized request",
				zap.String("path", c.Path()),
				zap.String("header", name),
				zap.Bool("header_present", got != ""))
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		return c.Next()
	}
}
