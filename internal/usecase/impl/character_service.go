package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "raidhub/internal/delivery/context"
	"raidhub/internal/domain/entity"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/repository"
	"raidhub/internal/usecase"

	"github.com/pkg/errors"
)

// characterService implements the CharacterUsecase interface.
type characterService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCharacterService is the constructor for characterService.
func NewCharacterService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CharacterUsecase {
	return &characterService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *characterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCharacters retrieves all characters owned by the user, oldest first.
func (srv *characterService) ListCharacters(ctx context.Context, userID int64) ([]*entity.Character, error) {
	var characters []*entity.Character

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCharacterRepository().FindByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list characters")
		}
		characters = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return characters, nil
}

// CreateCharacter creates a character for the user. When IsDefault is set,
// the owner lock is held while the previous default is cleared so the user
// never ends up with two defaults.
func (srv *characterService) CreateCharacter(ctx context.Context, userID int64, input *usecase.CreateCharacterInput) (*entity.Character, error) {
	if err := validateCharacterFields(input.Name, input.Level); err != nil {
		return nil, err
	}

	character := &entity.Character{
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		Job:       input.Job,
		Level:     input.Level,
		IsDefault: input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		characterRepo := repoFactory.NewCharacterRepository()

		if input.IsDefault {
			if err := characterRepo.AcquireOwnerLock(ctx, userID); err != nil {
				return err
			}
			if err := characterRepo.UnsetDefaultForUser(ctx, userID); err != nil {
				return err
			}
		}

		return characterRepo.Create(ctx, character)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Character created",
		slog.Int64("user_id", userID),
		slog.Int64("character_id", character.ID),
	)

	return character, nil
}

// UpdateCharacter applies a partial update to a character owned by the user.
func (srv *characterService) UpdateCharacter(ctx context.Context, userID, characterID int64, input *usecase.UpdateCharacterInput) (*entity.Character, error) {
	var character *entity.Character

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		characterRepo := repoFactory.NewCharacterRepository()

		// 1. Find the character and verify ownership
		found, err := findOwnedCharacter(ctx, characterRepo, userID, characterID)
		if err != nil {
			return err
		}

		// 2. Apply the partial update
		if input.Name != nil {
			found.Name = strings.TrimSpace(*input.Name)
		}
		if input.Job != nil {
			found.Job = *input.Job
		}
		if input.Level != nil {
			found.Level = input.Level
		}
		if err := validateCharacterFields(found.Name, found.Level); err != nil {
			return err
		}

		// 3. Default-flag changes take the owner lock to keep exclusivity
		if input.IsDefault != nil && *input.IsDefault != found.IsDefault {
			if *input.IsDefault {
				if err := characterRepo.AcquireOwnerLock(ctx, userID); err != nil {
					return err
				}
				if err := characterRepo.UnsetDefaultForUser(ctx, userID); err != nil {
					return err
				}
			}
			found.IsDefault = *input.IsDefault
		}

		if err := characterRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update character")
		}
		character = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Character updated",
		slog.Int64("user_id", userID),
		slog.Int64("character_id", characterID),
	)

	return character, nil
}

// DeleteCharacter removes a character owned by the user. Characters still
// signed up for a raid are protected from deletion.
func (srv *characterService) DeleteCharacter(ctx context.Context, userID, characterID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		characterRepo := repoFactory.NewCharacterRepository()

		// 1. Find the character and verify ownership
		if _, err := findOwnedCharacter(ctx, characterRepo, userID, characterID); err != nil {
			return err
		}

		// 2. Refuse to orphan raid rosters
		hasSignups, err := characterRepo.HasActiveSignups(ctx, characterID)
		if err != nil {
			return err
		}
		if hasSignups {
			return domainerrors.ErrCharacterHasSignups
		}

		// 3. Delete
		if err := characterRepo.Delete(ctx, characterID); err != nil {
			return errors.Wrap(err, "failed to delete character")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Character deleted",
		slog.Int64("user_id", userID),
		slog.Int64("character_id", characterID),
	)

	return nil
}

// SetDefaultCharacter marks the character as the user's single default. The
// unset-all/set-one pair runs under the owner lock in one transaction.
func (srv *characterService) SetDefaultCharacter(ctx context.Context, userID, characterID int64) (*entity.Character, error) {
	var character *entity.Character

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		characterRepo := repoFactory.NewCharacterRepository()

		// 1. Find the character and verify ownership
		found, err := findOwnedCharacter(ctx, characterRepo, userID, characterID)
		if err != nil {
			return err
		}

		// 2. Serialize default-selection per owner
		if err := characterRepo.AcquireOwnerLock(ctx, userID); err != nil {
			return err
		}

		// 3. Clear any previous default, then set the new one
		if err := characterRepo.UnsetDefaultForUser(ctx, userID); err != nil {
			return err
		}
		if err := characterRepo.SetDefault(ctx, characterID); err != nil {
			return errors.Wrap(err, "failed to set default character")
		}

		found.IsDefault = true
		character = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Default character set",
		slog.Int64("user_id", userID),
		slog.Int64("character_id", characterID),
	)

	return character, nil
}

// findOwnedCharacter loads a character and distinguishes a missing character
// from one owned by somebody else.
func findOwnedCharacter(ctx context.Context, characterRepo repository.CharacterRepository, userID, characterID int64) (*entity.Character, error) {
	found, err := characterRepo.FindByID(ctx, characterID)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			return nil, domainerrors.ErrCharacterNotFound
		}

		return nil, errors.Wrap(err, "failed to find character")
	}

	if found.UserID != userID {
		return nil, domainerrors.ErrCharacterOwnership
	}

	return found, nil
}

// validateCharacterFields enforces the character field invariants shared by
// create and update.
func validateCharacterFields(name string, level *int) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrEmptyCharacterName
	}
	if level != nil && *level < 0 {
		return domainerrors.ErrNegativeLevel
	}

	return nil
}
