package postgres

import (
	"context"
	"time"

	"raidhub/internal/domain/entity"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/repository"
	"raidhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// raidRepository implements the repository.RaidRepository interface.
type raidRepository struct {
	db *gorm.DB
}

// NewRaidRepository is the constructor for raidRepository.
func NewRaidRepository(db *gorm.DB) repository.RaidRepository {
	return &raidRepository{
		db: db,
	}
}

// FindByID retrieves a raid by id.
func (repo *raidRepository) FindByID(ctx context.Context, id int64) (*entity.Raid, error) {
	var raidM model.RaidModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&raidM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRaidNotFound
		}

		return nil, errors.Wrap(err, "failed to find raid by ID")
	}

	return toRaidDomain(&raidM), nil
}

// raidDetailRow is the scan target for the list query joining creator names.
type raidDetailRow struct {
	model.RaidModel
	CreatedByName string
}

// ListUpcoming lists raids starting at or after the given instant, ascending
// by start time, joined with the creator's display name.
func (repo *raidRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*entity.RaidDetail, error) {
	var rows []*raidDetailRow

	if err := repo.db.WithContext(ctx).
		Model(&model.RaidModel{}).
		Select("raids.*, users.name AS created_by_name").
		Joins("JOIN users ON users.id = raids.created_by").
		Where("raids.start_time >= ?", from).
		Order("raids.start_time ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming raids")
	}

	raids := make([]*entity.RaidDetail, 0, len(rows))
	for _, row := range rows {
		raids = append(raids, &entity.RaidDetail{
			Raid:          *toRaidDomain(&row.RaidModel),
			CreatedByName: row.CreatedByName,
		})
	}

	return raids, nil
}

// Create persists a new raid.
func (repo *raidRepository) Create(ctx context.Context, raid *entity.Raid) error {
	raidM := fromRaidDomain(raid)

	if err := repo.db.WithContext(ctx).Create(raidM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("raid creator does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required raid information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create raid")
	}

	// Update the entity with generated values
	raid.ID = raidM.ID
	raid.CreatedAt = raidM.CreatedAt

	return nil
}

// Delete removes a raid by id.
func (repo *raidRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RaidModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete raid")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRaidNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRaidDomain converts a GORM RaidModel to a domain Raid entity.
func toRaidDomain(data *model.RaidModel) *entity.Raid {
	if data == nil {
		return nil
	}

	return &entity.Raid{
		ID:        data.ID,
		Title:     data.Title,
		Subtitle:  data.Subtitle,
		Boss:      data.Boss,
		StartTime: data.StartTime,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
	}
}

// fromRaidDomain converts a domain Raid entity to a GORM RaidModel.
func fromRaidDomain(data *entity.Raid) *model.RaidModel {
	if data == nil {
		return nil
	}

	return &model.RaidModel{
		ID:        data.ID,
		Title:     data.Title,
		Subtitle:  data.Subtitle,
		Boss:      data.Boss,
		StartTime: data.StartTime,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
	}
}
