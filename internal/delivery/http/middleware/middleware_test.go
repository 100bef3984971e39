package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newAuthApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/sync", h, func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAPIKey(t *testing.T) {
	app := newAuthApp(APIKey("secret", zap.NewNop()))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid key", "secret", fiber.StatusOK},
		{"missing key", "", fiber.StatusUnauthorized},
		{"wrong key", "other", fiber.StatusUnauthorized},
		{"case sensitive", "SECRET", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/sync", nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHeaderAuth_EmptyConfiguredValueDeniesAll(t *testing.T) {
	app := newAuthApp(HeaderAuth("x-wp-webhook-key", "", zap.NewNop()))

	req := httptest.NewRequest("GET", "/sync", nil)
	req.Header.Set("x-wp-webhook-key", "")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

func TestLogger_LogsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(Logger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New()
	app.Use(Recovery(zap.New(core)))
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	entries := logs.FilterMessage("Panic recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["panic"])
	assert.Equal(t, "/panic", entries[0].ContextMap()["path"])
}

func TestRequestTimeout(t *testing.T) {
	app := fiber.New()
	app.Get("/limited", RequestTimeout(time.Minute), func(c *fiber.Ctx) error {
		deadline, ok := c.UserContext().Deadline()
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		return c.SendString("ok")
	})
	app.Get("/unlimited", RequestTimeout(0), func(c *fiber.Ctx) error {
		if _, ok := c.UserContext().Deadline(); ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString("ok")
	})

	for _, path := range []string{"/limited", "/unlimited"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestRequestTimeout_ExpiredDeadlineCancelsContext(t *testing.T) {
	app := fiber.New()
	app.Get("/slow", RequestTimeout(time.Millisecond), func(c *fiber.Ctx) error {
		<-c.UserContext().Done()
		return c.Status(499).SendString(c.UserContext().Err().Error())
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/slow", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 499, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "context deadline exceeded", string(body))
}
