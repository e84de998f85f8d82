package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NiniolaX/alx-backend-user-data/internal/domain"
)

// DefaultSessionCookie is the cookie read when no name is configured.
const DefaultSessionCookie = "session_id"

// SessionResolver is the slice of the auth service SessionAuth needs.
type SessionResolver interface {
	GetUserBySession(ctx context.Context, sessionID string) (*domain.User, error)
}

// SessionAuth authenticates requests from a session cookie.
type SessionAuth struct {
	auth       SessionResolver
	cookieName string
}

func NewSessionAuth(auth SessionResolver, cookieName string) *SessionAuth {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return &SessionAuth{auth: auth, cookieName: cookieName}
}

// CookieName returns the configured session cookie name.
func (s *SessionAuth) CookieName() string {
	return s.cookieName
}

// ResolveUser looks up the user holding the session token in the cookie.
func (s *SessionAuth) ResolveUser(c *fiber.Ctx) (*domain.User, error) {
	sessionID := c.Cookies(s.cookieName)
	if sessionID == "" {
		return nil, ErrNoCredentials
	}

	return s.auth.GetUserBySession(c.Context(), sessionID)
}
