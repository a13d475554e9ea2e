package repository

import (
	"context"
	"sync"

	"codedrill/internal/common"
	"codedrill/internal/domain/model"
)

type UserRepository interface {
	// Create appends the user and assigns its ID. Fails with
	// common.ErrConflict when the email is already registered.
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByToken(ctx context.Context, token string) (*model.User, error)
	// UpdateToken replaces the user's session token. Whatever token was
	// issued before stops matching from this point on.
	UpdateToken(ctx context.Context, userID int, token string) error
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []model.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{}
}

func (r *memoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == user.Email {
			return common.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	// IDs are derived from the current store size, matching the original
	// registration contract.
	user.ID = len(r.users) + 1
	r.users = append(r.users, *user)
	return nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryUserRepository) FindByToken(_ context.Context, token string) (*model.User, error) {
	if token == "" {
		// Users who never logged in hold an empty token; an absent
		// Authorization header must not resolve to them.
		return nil, common.ErrNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Token == token {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryUserRepository) UpdateToken(_ context.Context, userID int, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].Token = token
			return nil
		}
	}
	return common.ErrNotFound
}
