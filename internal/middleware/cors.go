package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CORSConfig holds the single allowed browser origin.
type CORSConfig struct {
	AllowedOrigin string
}

// CORS allows the configured client origin with credentials and answers
// preflight requests directly. Requests without an Origin header (curl,
// same-origin) pass through.
func CORS(cfg CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}
		if origin != cfg.AllowedOrigin {
			return c.Next()
		}
		c.Set("Access-Control-Allow-Origin", origin)
		c.Set("Access-Control-Allow-Credentials", "true")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
