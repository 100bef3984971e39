package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck - проверка доступности зависимости
type HealthCheck func(ctx context.Context) error

// HealthHandler - состояние сервиса и его зависимостей
type HealthHandler struct {
	checks map[string]HealthCheck
	logger *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(checks map[string]HealthCheck, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// Health godoc
// @Summary Состояние сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	deps := make(fiber.Map, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = err.Error()
			status = "unhealthy"
			code = fiber.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"time":         time.Now(),
		"dependencies": deps,
	})
}
