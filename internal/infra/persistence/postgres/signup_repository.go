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

// signupRepository implements the repository.SignupRepository interface.
type signupRepository struct {
	db *gorm.DB
}

// NewSignupRepository is the constructor for signupRepository.
func NewSignupRepository(db *gorm.DB) repository.SignupRepository {
	return &signupRepository{
		db: db,
	}
}

// Create persists a new signup.
func (repo *signupRepository) Create(ctx context.Context, signup *entity.Signup) error {
	signupM := fromSignupDomain(signup)

	if err := repo.db.WithContext(ctx).Create(signupM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSignup
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRaidNotFound.WrapMessage("invalid raid or character reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required signup information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create signup")
	}

	// Update the entity with generated values
	signup.ID = signupM.ID
	signup.Status = signupM.Status
	signup.CreatedAt = signupM.CreatedAt

	return nil
}

// ExistsByRaidAndCharacter reports whether a signup already exists for the pair.
func (repo *signupRepository) ExistsByRaidAndCharacter(ctx context.Context, raidID, characterID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SignupModel{}).
		Where("raid_id = ? AND character_id = ?", raidID, characterID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check existing signup")
	}

	return count > 0, nil
}

// CountByRaid returns the number of signups for a raid.
func (repo *signupRepository) CountByRaid(ctx context.Context, raidID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SignupModel{}).
		Where("raid_id = ?", raidID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count signups")
	}

	return count, nil
}

// signupDetailRow is the scan target for the roster query joining characters
// and their owners.
type signupDetailRow struct {
	SignupID      int64
	CharacterID   int64
	CharacterName string
	Job           string
	Level         *int
	UserID        int64
	UserName      string
	UserPicture   string
	Status        string
}

// FindDetailsByRaid lists a raid's signups joined with character and owner
// fields, oldest signup first.
func (repo *signupRepository) FindDetailsByRaid(ctx context.Context, raidID int64) ([]*entity.SignupDetail, error) {
	var rows []*signupDetailRow

	if err := repo.db.WithContext(ctx).
		Model(&model.SignupModel{}).
		Select(`signups.id AS signup_id,
			characters.id AS character_id,
			characters.name AS character_name,
			characters.job AS job,
			characters.level AS level,
			users.id AS user_id,
			users.name AS user_name,
			users.picture AS user_picture,
			signups.status AS status`).
		Joins("JOIN characters ON characters.id = signups.character_id").
		Joins("JOIN users ON users.id = characters.user_id").
		Where("signups.raid_id = ?", raidID).
		Order("signups.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find signup details")
	}

	details := make([]*entity.SignupDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, &entity.SignupDetail{
			SignupID:      row.SignupID,
			CharacterID:   row.CharacterID,
			CharacterName: row.CharacterName,
			Job:           row.Job,
			Level:         row.Level,
			UserID:        row.UserID,
			UserName:      row.UserName,
			UserPicture:   row.UserPicture,
			Status:        row.Status,
		})
	}

	return details, nil
}

// DeleteByID removes a single signup.
func (repo *signupRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SignupModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete signup")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSignupNotFound
	}

	return nil
}

// DeleteByRaid removes every signup referencing the raid. Deleting zero rows
// is fine here, an empty raid still cascades cleanly.
func (repo *signupRepository) DeleteByRaid(ctx context.Context, raidID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("raid_id = ?", raidID).
		Delete(&model.SignupModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete signups by raid")
	}

	return nil
}

// AcquireRaidLock serializes the signup protocol per raid so the capacity
// count cannot race a concurrent insert for the same raid.
func (repo *signupRepository) AcquireRaidLock(ctx context.Context, raidID int64) error {
	return acquireAdvisoryXactLock(ctx, repo.db, lockClassRaidSignup, raidID)
}

// --- Mapper Functions ---

// toSignupDomain converts a GORM SignupModel to a domain Signup entity.
func toSignupDomain(data *model.SignupModel) *entity.Signup {
	if data == nil {
		return nil
	}

	return &entity.Signup{
		ID:          data.ID,
		RaidID:      data.RaidID,
		CharacterID: data.CharacterID,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
	}
}

// fromSignupDomain converts a domain Signup entity to a GORM SignupModel.
func fromSignupDomain(data *entity.Signup) *model.SignupModel {
	if data == nil {
		return nil
	}

	return &model.SignupModel{
		ID:          data.ID,
		RaidID:      data.RaidID,
		CharacterID: data.CharacterID,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
	}
}
