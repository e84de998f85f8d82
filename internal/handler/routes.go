package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	healthHandler *HealthHandler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	app.Get("/", authHandler.Home)

	// API v1
	api := app.Group("/api/v1")

	api.Post("/users", authHandler.Register)
	api.Get("/users/me", authHandler.Me)
	api.Post("/sessions", authHandler.Login)
	api.Delete("/sessions", authHandler.Logout)
	api.Get("/profile", authHandler.Profile)
	api.Post("/reset_password", authHandler.RequestResetToken)
	api.Put("/reset_password", authHandler.UpdatePassword)
}
