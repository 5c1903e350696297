package repository

import (
	"context"

	"raidhub/internal/domain/entity"
)

// CharacterRepository manages game characters and their default-selection
// flag. The AcquireOwnerLock / UnsetDefaultForUser / SetDefault trio is only
// meaningful inside a transaction obtained from the TransactionManager.
type CharacterRepository interface {
	// FindByID retrieves a character by id. Returns ErrCharacterNotFound
	// when absent.
	FindByID(ctx context.Context, id int64) (*entity.Character, error)

	// FindByUserID lists all characters owned by a user, oldest first.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Character, error)

	// ExistsByIDAndUser reports whether the character exists and is owned by
	// the given user. This is the single ownership predicate used before
	// every character mutation and signup creation.
	ExistsByIDAndUser(ctx context.Context, id, userID int64) (bool, error)

	// HasActiveSignups reports whether any signup still references the
	// character.
	HasActiveSignups(ctx context.Context, id int64) (bool, error)

	// Create persists a new character and fills in the generated id and
	// timestamps.
	Create(ctx context.Context, character *entity.Character) error

	// Update persists changes to an existing character.
	Update(ctx context.Context, character *entity.Character) error

	// Delete removes a character by id.
	Delete(ctx context.Context, id int64) error

	// UnsetDefaultForUser clears is_default on every character owned by the
	// user.
	UnsetDefaultForUser(ctx context.Context, userID int64) error

	// SetDefault marks the character as its owner's default.
	SetDefault(ctx context.Context, id int64) error

	// AcquireOwnerLock blocks until a transaction-scoped lock for the owner's
	// default-selection updates is held. Released on commit or rollback.
	AcquireOwnerLock(ctx context.Context, userID int64) error
}
