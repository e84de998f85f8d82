package repository

import (
	"context"

	"github.com/NiniolaX/alx-backend-user-data/internal/domain"
)

// UserRepository is the user record store. Lookups that match no row return
// domain.ErrNotFound; Create returns domain.ErrAlreadyExists when the email
// is taken. Nil pointer arguments to the update methods clear the column.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	UpdateSessionID(ctx context.Context, id int64, sessionID *string) error
	UpdateResetToken(ctx context.Context, id int64, token *string) error
	// UpdatePassword replaces the stored digest and clears any reset token
	// in the same statement, so a token cannot outlive its redemption.
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
}
