package usecase

import (
	"context"

	"raidhub/internal/domain/entity"
)

// CreateCharacterInput carries the fields for a new character.
type CreateCharacterInput struct {
	Name      string
	Job       string
	Level     *int
	IsDefault bool
}

// UpdateCharacterInput carries a partial character update. Nil fields are
// left unchanged.
type UpdateCharacterInput struct {
	Name      *string
	Job       *string
	Level     *int
	IsDefault *bool
}

// CharacterUsecase defines the interface for character management use cases.
// Every operation takes the acting user's id and enforces ownership before
// touching a character.
type CharacterUsecase interface {
	// ListCharacters retrieves all characters owned by the user.
	ListCharacters(ctx context.Context, userID int64) ([]*entity.Character, error)

	// CreateCharacter creates a character for the user. When IsDefault is
	// set, any previous default is cleared in the same transaction.
	CreateCharacter(ctx context.Context, userID int64, input *CreateCharacterInput) (*entity.Character, error)

	// UpdateCharacter applies a partial update to a character owned by the user.
	UpdateCharacter(ctx context.Context, userID, characterID int64, input *UpdateCharacterInput) (*entity.Character, error)

	// DeleteCharacter removes a character owned by the user. Characters with
	// active raid signups cannot be deleted.
	DeleteCharacter(ctx context.Context, userID, characterID int64) error

	// SetDefaultCharacter marks the character as the user's single default.
	SetDefaultCharacter(ctx context.Context, userID, characterID int64) (*entity.Character, error)
}
