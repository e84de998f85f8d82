package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NiniolaX/alx-backend-user-data/internal/domain"
	"github.com/NiniolaX/alx-backend-user-data/internal/handler/middleware"
	"github.com/NiniolaX/alx-backend-user-data/internal/service"
	"github.com/NiniolaX/alx-backend-user-data/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	sessionAuth *middleware.SessionAuth
	validator   *validator.Validator
}

type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type ResetTokenRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type UpdatePasswordRequest struct {
	Email       string `json:"email" form:"email" validate:"required,email"`
	ResetToken  string `json:"reset_token" form:"reset_token" validate:"required"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required"`
}

func NewAuthHandler(authService *service.AuthService, sessionAuth *middleware.SessionAuth, validator *validator.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionAuth: sessionAuth,
		validator:   validator,
	}
}

// Home handles the index route
// GET /
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Bienvenue",
	})
}

// Register handles user registration
// POST /api/v1/users
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	user, err := h.authService.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "email already registered",
			})
		}
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "email and password are required",
			})
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"email":   user.Email,
		"message": "user created",
	})
}

// Login handles user login and sets the session cookie
// POST /api/v1/sessions
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	if !h.authService.ValidateLogin(c.Context(), req.Email, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "invalid credentials",
		})
	}

	sessionID, err := h.authService.CreateSession(c.Context(), req.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.sessionAuth.CookieName(),
		Value:    sessionID,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"email":   req.Email,
		"message": "logged in",
	})
}

// Logout destroys the current session and clears the cookie
// DELETE /api/v1/sessions
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, err := h.sessionAuth.ResolveUser(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
		})
	}

	if !h.authService.DestroySession(c.Context(), user.ID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
		})
	}

	c.ClearCookie(h.sessionAuth.CookieName())

	return c.JSON(fiber.Map{})
}

// Profile returns the email of the logged-in user
// GET /api/v1/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.sessionAuth.ResolveUser(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
		})
	}

	return c.JSON(fiber.Map{
		"email": user.Email,
	})
}

// Me returns the user resolved by the auth middleware
// GET /api/v1/users/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
		})
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

// RequestResetToken issues a password reset token
// POST /api/v1/reset_password
func (h *AuthHandler) RequestResetToken(c *fiber.Ctx) error {
	var req ResetTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	token, err := h.authService.IssueResetToken(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
			})
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"email":       req.Email,
		"reset_token": token,
	})
}

// UpdatePassword redeems a reset token and rotates the password
// PUT /api/v1/reset_password
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var req UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	if err := h.authService.UpdatePassword(c.Context(), req.ResetToken, req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrInvalidToken) || errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
			})
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"email":   req.Email,
		"message": "Password updated",
	})
}
