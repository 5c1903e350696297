package repository

import (
	"context"

	"raidhub/internal/domain/entity"
)

// UserRepository manages the authenticated principals created by the login
// flow. Users are never deleted.
type UserRepository interface {
	// FindByID retrieves a user by their numeric id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByLineUserID retrieves a user by their external provider id.
	// Returns ErrUserNotFound when no such user exists.
	FindByLineUserID(ctx context.Context, lineUserID string) (*entity.User, error)

	// Create persists a new user and fills in the generated id and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update refreshes the user's display name and avatar.
	Update(ctx context.Context, user *entity.User) error
}
