// Package memory keeps users and results in process memory.
// It is the default storage driver and backs the HTTP tests.
package memory

import (
	"context"
	"sync"
	"time"

	"areacheck/internal/domain/entity"
	"areacheck/internal/domain/repository"
	"areacheck/internal/errors"
)

type userRepository struct {
	mu         sync.RWMutex
	nextID     int64
	byID       map[int64]*entity.User
	byUsername map[string]int64
	now        func() time.Time
}

// NewUserRepository returns an empty in-memory user store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:       make(map[int64]*entity.User),
		byUsername: make(map[string]int64),
		now:        time.Now,
	}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byUsername[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(repo.byID[id]), nil
}

// Create checks and claims the username under one lock, so concurrent signups cannot both win.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.byUsername[user.Username]; taken {
		return errors.Wrapf(repository.ErrUsernameConflict, "username %q", user.Username)
	}

	repo.nextID++
	user.ID = repo.nextID
	user.CreatedAt = repo.now()

	repo.byID[user.ID] = cloneUser(user)
	repo.byUsername[user.Username] = user.ID

	return nil
}

func cloneUser(user *entity.User) *entity.User {
	cloned := *user

	return &cloned
}
