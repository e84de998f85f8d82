package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/NiniolaX/alx-backend-user-data/internal/domain"
	"github.com/NiniolaX/alx-backend-user-data/internal/repository"
	"github.com/NiniolaX/alx-backend-user-data/pkg/hash"
	"github.com/NiniolaX/alx-backend-user-data/pkg/redact"
)

// AuthService orchestrates the credential and session lifecycle: it verifies
// passwords, issues and destroys session tokens, and issues and redeems
// password reset tokens. Every lookup either yields a definite user or one
// of the sentinel errors in the domain package; storage and crypto errors
// never cross this boundary untyped.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   *hash.Hasher
	logger   *redact.Logger
}

func NewAuthService(userRepo repository.UserRepository, hasher *hash.Hasher, logger *redact.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register creates a user with the given email and password. It returns
// domain.ErrValidation when either input is empty and domain.ErrAlreadyExists
// when the email is taken.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:          email,
		HashedPassword: digest,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Printf("user registered; email=%s", user.Email)
	return user, nil
}

// ValidateLogin reports whether email and password identify a registered
// user. It never returns an error: unknown emails, empty passwords, and
// digest mismatches all read as false, so callers cannot distinguish a
// missing account from a wrong password.
func (s *AuthService) ValidateLogin(ctx context.Context, email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false
	}

	return s.hasher.Verify(password, user.HashedPassword)
}

// GetUserByEmail returns the user registered under email, or
// domain.ErrNotFound.
func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

// CreateSession issues a fresh session token for the user with the given
// email, overwriting any prior token. The previous session, if any, is
// implicitly invalidated: a user has at most one live session.
func (s *AuthService) CreateSession(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	sessionID := uuid.NewString()
	if err := s.userRepo.UpdateSessionID(ctx, user.ID, &sessionID); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Printf("session created; email=%s", user.Email)
	return sessionID, nil
}

// GetUserBySession resolves a session token to its user. An empty token or
// a token held by no user yields domain.ErrNotFound.
func (s *AuthService) GetUserBySession(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, domain.ErrNotFound
	}

	user, err := s.userRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	return user, nil
}

// DestroySession clears the session of the user with the given id. It fails
// softly: an unknown user or a user with no live session returns false.
func (s *AuthService) DestroySession(ctx context.Context, userID int64) bool {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user.SessionID == nil {
		return false
	}

	if err := s.userRepo.UpdateSessionID(ctx, user.ID, nil); err != nil {
		return false
	}

	s.logger.Printf("session destroyed; email=%s", user.Email)
	return true
}

// IssueResetToken generates a password reset token for the user with the
// given email, replacing any outstanding token. Unknown emails yield
// domain.ErrNotFound; callers map that to a forbidden response without
// revealing a token.
func (s *AuthService) IssueResetToken(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	token := uuid.NewString()
	if err := s.userRepo.UpdateResetToken(ctx, user.ID, &token); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	s.logger.Printf("reset token issued; email=%s", user.Email)
	return token, nil
}

// UpdatePassword redeems a reset token: it replaces the stored digest with
// a hash of newPassword and clears the token, so a second redemption with
// the same token fails with domain.ErrInvalidToken.
func (s *AuthService) UpdatePassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return domain.ErrValidation
	}

	user, err := s.userRepo.GetByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidToken
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, digest); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Printf("password updated; email=%s", user.Email)
	return nil
}
