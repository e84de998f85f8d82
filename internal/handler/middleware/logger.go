package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NiniolaX/alx-backend-user-data/pkg/redact"
)

// LoggerMiddleware logs HTTP requests and responses through the redacting
// logger, so PII leaking into paths never reaches the log.
func LoggerMiddleware(logger *redact.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		logger.Printf("[%s] %s - %d in %v",
			c.Method(),
			c.Path(),
			status,
			latency,
		)

		return err
	}
}
