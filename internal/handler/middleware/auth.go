package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/NiniolaX/alx-backend-user-data/internal/domain"
)

// Authenticator resolves the user making a request, or reports why it
// cannot. Two implementations exist: BasicAuth reads credentials from the
// Authorization header, SessionAuth reads a session cookie.
type Authenticator interface {
	// ResolveUser returns the authenticated user for the request. It
	// returns ErrNoCredentials when the request carries none, and
	// domain.ErrNotFound when the credentials resolve to no user.
	ResolveUser(c *fiber.Ctx) (*domain.User, error)
}

// ErrNoCredentials marks requests without usable credentials.
var ErrNoCredentials = errors.New("no credentials")

// PathIsExcluded reports whether path matches one of the excluded paths.
// Both sides are normalized by stripping a single trailing slash; matching
// is exact, with no wildcard or prefix semantics.
func PathIsExcluded(path string, excluded []string) bool {
	if path == "" || len(excluded) == 0 {
		return false
	}

	normalized := strings.TrimSuffix(path, "/")
	for _, e := range excluded {
		if strings.TrimSuffix(e, "/") == normalized {
			return true
		}
	}

	return false
}

// RequireAuth guards every path not listed in excluded. Requests without
// credentials get 401; requests whose credentials resolve to no user get
// 403. On success the user is stored in c.Locals("user").
func RequireAuth(auth Authenticator, excluded []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if PathIsExcluded(c.Path(), excluded) {
			return c.Next()
		}

		user, err := auth.ResolveUser(c)
		if errors.Is(err, ErrNoCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden",
			})
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// UserFromContext returns the user stored by RequireAuth, if any.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals("user").(*domain.User)
	return user, ok
}
