package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/NiniolaX/alx-backend-user-data/internal/domain"
	"github.com/NiniolaX/alx-backend-user-data/internal/repository"
)

// uniqueViolation is the postgres error code raised by the unique
// constraint on users.email.
const uniqueViolation = "23505"

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user and fills in the store-assigned id.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id`

	now := time.Now()
	err := r.db.QueryRowxContext(ctx, query, user.Email, user.HashedPassword, now).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *userRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.User, error) {
	return r.getBy(ctx, "session_id = $1", sessionID)
}

func (r *userRepository) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getBy(ctx, "reset_token = $1", token)
}

func (r *userRepository) getBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT id, email, hashed_password, session_id, reset_token, created_at, updated_at
		FROM users
		WHERE ` + where

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateSessionID sets or clears the session_id column.
func (r *userRepository) UpdateSessionID(ctx context.Context, id int64, sessionID *string) error {
	query := `
		UPDATE users
		SET session_id = $1,
			updated_at = $2
		WHERE id = $3`

	return r.exec(ctx, query, sessionID, time.Now(), id)
}

// UpdateResetToken sets or clears the reset_token column.
func (r *userRepository) UpdateResetToken(ctx context.Context, id int64, token *string) error {
	query := `
		UPDATE users
		SET reset_token = $1,
			updated_at = $2
		WHERE id = $3`

	return r.exec(ctx, query, token, time.Now(), id)
}

// UpdatePassword replaces the digest and clears the reset token in one
// statement, making token redemption single-use.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	query := `
		UPDATE users
		SET hashed_password = $1,
			reset_token = NULL,
			updated_at = $2
		WHERE id = $3`

	return r.exec(ctx, query, hashedPassword, time.Now(), id)
}

func (r *userRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
