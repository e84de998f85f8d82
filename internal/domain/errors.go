package domain

import "errors"

var (
	// ErrValidation covers missing or malformed input. Handlers map it to 400.
	ErrValidation = errors.New("invalid input")
	// ErrAlreadyExists is returned when registration hits the unique email
	// constraint. Handlers map it to 400 "email already registered".
	ErrAlreadyExists = errors.New("email already registered")
	// ErrNotFound is returned when a lookup by email or session resolves to
	// no user. The login path never surfaces it, so callers cannot tell a
	// missing account from a wrong password.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidToken is returned when a reset token matches no user,
	// including tokens already redeemed once.
	ErrInvalidToken = errors.New("invalid reset token")
)
