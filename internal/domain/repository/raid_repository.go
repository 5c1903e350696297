package repository

import (
	"context"
	"time"

	"raidhub/internal/domain/entity"
)

// RaidRepository manages scheduled raid events.
type RaidRepository interface {
	// FindByID retrieves a raid by id. Returns ErrRaidNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Raid, error)

	// ListUpcoming lists raids whose start time is at or after the given
	// instant, ascending by start time, joined with creator display names.
	ListUpcoming(ctx context.Context, from time.Time) ([]*entity.RaidDetail, error)

	// Create persists a new raid and fills in the generated id and timestamp.
	Create(ctx context.Context, raid *entity.Raid) error

	// Delete removes a raid by id. Signups must be removed first; the cascade
	// is orchestrated by the use case inside one transaction.
	Delete(ctx context.Context, id int64) error
}
