// Package inmemory holds a map-backed user repository used by tests and
// local development. It enforces the same email uniqueness and not-found
// semantics as the postgres implementation.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/NiniolaX/alx-backend-user-data/internal/domain"
	"github.com/NiniolaX/alx-backend-user-data/internal/repository"
)

type userRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*domain.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		nextID: 1,
		users:  make(map[int64]*domain.User),
	}
}

func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrAlreadyExists
		}
	}

	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.nextID++

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *userRepository) GetBySessionID(_ context.Context, sessionID string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool {
		return u.SessionID != nil && *u.SessionID == sessionID
	})
}

func (r *userRepository) GetByResetToken(_ context.Context, token string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool {
		return u.ResetToken != nil && *u.ResetToken == token
	})
}

func (r *userRepository) UpdateSessionID(_ context.Context, id int64, sessionID *string) error {
	return r.update(id, func(u *domain.User) {
		u.SessionID = cloneString(sessionID)
	})
}

func (r *userRepository) UpdateResetToken(_ context.Context, id int64, token *string) error {
	return r.update(id, func(u *domain.User) {
		u.ResetToken = cloneString(token)
	})
}

func (r *userRepository) UpdatePassword(_ context.Context, id int64, hashedPassword string) error {
	return r.update(id, func(u *domain.User) {
		u.HashedPassword = hashedPassword
		u.ResetToken = nil
	})
}

func (r *userRepository) find(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepository) update(id int64, apply func(*domain.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	apply(user)
	user.UpdatedAt = time.Now()
	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
