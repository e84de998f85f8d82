package service

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/NiniolaX/alx-backend-user-data/internal/domain"
	"github.com/NiniolaX/alx-backend-user-data/internal/repository/inmemory"
	"github.com/NiniolaX/alx-backend-user-data/pkg/hash"
	"github.com/NiniolaX/alx-backend-user-data/pkg/redact"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	logger := redact.NewLogger(log.New(io.Discard, "", 0), nil)
	return NewAuthService(inmemory.NewUserRepository(), hash.NewHasher(bcrypt.MinCost), logger)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	user, err := s.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "pw1", user.HashedPassword)

	t.Run("duplicate email fails regardless of password", func(t *testing.T) {
		_, err := s.Register(ctx, "a@x.com", "pw1")
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		_, err = s.Register(ctx, "a@x.com", "different")
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("empty inputs fail validation", func(t *testing.T) {
		_, err := s.Register(ctx, "", "pw")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = s.Register(ctx, "b@x.com", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestValidateLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.Register(ctx, "a@x.com", "correct")
	require.NoError(t, err)

	assert.True(t, s.ValidateLogin(ctx, "a@x.com", "correct"))
	assert.False(t, s.ValidateLogin(ctx, "a@x.com", "wrong"))
	assert.False(t, s.ValidateLogin(ctx, "a@x.com", ""))
	assert.False(t, s.ValidateLogin(ctx, "nobody@x.com", "correct"))
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	user, err := s.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	sessionID, err := s.CreateSession(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	got, err := s.GetUserBySession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "a@x.com", got.Email)

	t.Run("new session invalidates the previous one", func(t *testing.T) {
		second, err := s.CreateSession(ctx, "a@x.com")
		require.NoError(t, err)
		assert.NotEqual(t, sessionID, second)

		_, err = s.GetUserBySession(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		sessionID = second
	})

	t.Run("destroy clears the session", func(t *testing.T) {
		assert.True(t, s.DestroySession(ctx, user.ID))

		_, err := s.GetUserBySession(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("destroy fails softly", func(t *testing.T) {
		// no live session anymore
		assert.False(t, s.DestroySession(ctx, user.ID))
		// unknown user
		assert.False(t, s.DestroySession(ctx, 9999))
	})
}

func TestCreateSessionUnknownEmail(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateSession(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetUserBySessionEmptyToken(t *testing.T) {
	s := newTestService(t)

	_, err := s.GetUserBySession(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.Register(ctx, "a@x.com", "old-pw")
	require.NoError(t, err)

	token, err := s.IssueResetToken(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, s.UpdatePassword(ctx, token, "new-pw"))

	assert.False(t, s.ValidateLogin(ctx, "a@x.com", "old-pw"))
	assert.True(t, s.ValidateLogin(ctx, "a@x.com", "new-pw"))

	t.Run("token is single use", func(t *testing.T) {
		err := s.UpdatePassword(ctx, token, "another-pw")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestIssueResetTokenUnknownEmail(t *testing.T) {
	s := newTestService(t)

	_, err := s.IssueResetToken(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePasswordBadToken(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	err := s.UpdatePassword(ctx, "no-such-token", "pw")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	err = s.UpdatePassword(ctx, "", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.Register(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	user, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = s.GetUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
