package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing; origins
// дополняют локальные адреса фронтенда
func CORS(origins ...string) fiber.Handler {
	allowed := []string{"http://localhost:3000", "http://localhost:5173"}
	for _, o := range origins {
		if o = strings.TrimRight(o, "/"); o != "" {
			allowed = append(allowed, o)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins: strings.Join(allowed, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type,Accept,Accept-Language," + APIKeyHeader,
	})
}
