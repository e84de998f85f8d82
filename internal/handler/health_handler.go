package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health returns basic health status
// GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"service": "user-auth",
	})
}

// Ready returns readiness status
// GET /ready
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	database := "ok"
	status := fiber.StatusOK

	if h.db != nil {
		if err := h.db.PingContext(c.Context()); err != nil {
			database = "unreachable"
			status = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"status": "ready",
		"checks": fiber.Map{
			"database": database,
		},
	})
}
