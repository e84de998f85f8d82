package middleware

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/NiniolaX/alx-backend-user-data/internal/domain"
)

// CredentialChecker is the slice of the auth service BasicAuth needs.
type CredentialChecker interface {
	ValidateLogin(ctx context.Context, email, password string) bool
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// BasicAuth authenticates requests from an "Authorization: Basic <base64>"
// header. Any malformed header reads as no credentials rather than an error.
type BasicAuth struct {
	auth CredentialChecker
}

func NewBasicAuth(auth CredentialChecker) *BasicAuth {
	return &BasicAuth{auth: auth}
}

// ResolveUser decodes the header and verifies the credentials against the
// user store.
func (b *BasicAuth) ResolveUser(c *fiber.Ctx) (*domain.User, error) {
	email, password, ok := decodeBasicHeader(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return nil, ErrNoCredentials
	}

	if !b.auth.ValidateLogin(c.Context(), email, password) {
		return nil, domain.ErrNotFound
	}

	return b.auth.GetUserByEmail(c.Context(), email)
}

// decodeBasicHeader extracts the email and password from a Basic auth
// header. It fails silently on a missing "Basic " prefix, invalid base64,
// or a payload without a colon; the password may itself contain colons, so
// the split happens at the first one only.
func decodeBasicHeader(header string) (email, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}

	email, password, ok = strings.Cut(string(decoded), ":")
	if !ok || email == "" {
		return "", "", false
	}

	return email, password, true
}
