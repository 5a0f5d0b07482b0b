// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the use cases and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"areacheck/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameConflict is returned by Create when the username is already stored.
	ErrUsernameConflict = errors.New("username already exists")
)

// UserRepository defines the standard operations for user persistence.
// Each call is atomic on its own; callers do not hold transactions across calls.
type UserRepository interface {
	// FindByID retrieves a single user by their id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and sets its ID and CreatedAt.
	Create(ctx context.Context, user *entity.User) error
}
