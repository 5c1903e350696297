package postgres

import (
	"context"

	"raidhub/internal/domain/entity"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/repository"
	"raidhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// characterRepository implements the repository.CharacterRepository interface.
type characterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository is the constructor for characterRepository.
func NewCharacterRepository(db *gorm.DB) repository.CharacterRepository {
	return &characterRepository{
		db: db,
	}
}

// FindByID retrieves a character by id.
func (repo *characterRepository) FindByID(ctx context.Context, id int64) (*entity.Character, error) {
	var characterM model.CharacterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&characterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCharacterNotFound
		}

		return nil, errors.Wrap(err, "failed to find character by ID")
	}

	return toCharacterDomain(&characterM), nil
}

// FindByUserID lists all characters owned by a user, oldest first.
func (repo *characterRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Character, error) {
	var characterModels []*model.CharacterModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&characterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find characters by user")
	}

	characters := make([]*entity.Character, 0, len(characterModels))
	for _, characterM := range characterModels {
		characters = append(characters, toCharacterDomain(characterM))
	}

	return characters, nil
}

// ExistsByIDAndUser reports whether the character exists and is owned by the given user.
func (repo *characterRepository) ExistsByIDAndUser(ctx context.Context, id, userID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CharacterModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check character ownership")
	}

	return count > 0, nil
}

// HasActiveSignups reports whether any signup still references the character.
func (repo *characterRepository) HasActiveSignups(ctx context.Context, id int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SignupModel{}).
		Where("character_id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check character signups")
	}

	return count > 0, nil
}

// Create persists a new character.
func (repo *characterRepository) Create(ctx context.Context, character *entity.Character) error {
	characterM := fromCharacterDomain(character)

	if err := repo.db.WithContext(ctx).Create(characterM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("character owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required character information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create character")
	}

	// Update the entity with generated values
	character.ID = characterM.ID
	character.CreatedAt = characterM.CreatedAt
	character.UpdatedAt = characterM.UpdatedAt

	return nil
}

// Update persists changes to an existing character.
func (repo *characterRepository) Update(ctx context.Context, character *entity.Character) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CharacterModel{}).
		Where("id = ?", character.ID).
		Updates(map[string]any{
			"name":       character.Name,
			"job":        character.Job,
			"level":      character.Level,
			"is_default": character.IsDefault,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update character")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCharacterNotFound
	}

	return nil
}

// Delete removes a character by id.
func (repo *characterRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CharacterModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete character")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCharacterNotFound
	}

	return nil
}

// UnsetDefaultForUser clears is_default on every character owned by the user.
func (repo *characterRepository) UnsetDefaultForUser(ctx context.Context, userID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.CharacterModel{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "failed to unset default characters")
	}

	return nil
}

// SetDefault marks the character as its owner's default.
func (repo *characterRepository) SetDefault(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CharacterModel{}).
		Where("id = ?", id).
		Update("is_default", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set default character")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCharacterNotFound
	}

	return nil
}

// AcquireOwnerLock serializes default-selection updates per owner so two
// concurrent requests cannot leave a user with two default characters.
func (repo *characterRepository) AcquireOwnerLock(ctx context.Context, userID int64) error {
	return acquireAdvisoryXactLock(ctx, repo.db, lockClassCharacterDefault, userID)
}

// --- Mapper Functions ---

// toCharacterDomain converts a GORM CharacterModel to a domain Character entity.
func toCharacterDomain(data *model.CharacterModel) *entity.Character {
	if data == nil {
		return nil
	}

	return &entity.Character{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Job:       data.Job,
		Level:     data.Level,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCharacterDomain converts a domain Character entity to a GORM CharacterModel.
func fromCharacterDomain(data *entity.Character) *model.CharacterModel {
	if data == nil {
		return nil
	}

	return &model.CharacterModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Job:       data.Job,
		Level:     data.Level,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
