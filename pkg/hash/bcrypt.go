// Package hash wraps bcrypt behind the two operations the rest of the
// service needs: one-way hashing and verification.
package hash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// Hasher hashes and verifies passwords with a configurable bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given cost, falling back to the
// bcrypt default when cost is non-positive.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt digest of password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether password matches the given digest. Empty inputs
// verify false without touching bcrypt.
func (h *Hasher) Verify(password, digest string) bool {
	if password == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
