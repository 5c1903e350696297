package repository

import (
	"context"

	"raidhub/internal/domain/entity"
)

// SignupRepository manages the raid/character join records.
type SignupRepository interface {
	// Create persists a new signup and fills in the generated id and
	// timestamp. Returns ErrDuplicateSignup when the (raid_id, character_id)
	// unique constraint is violated.
	Create(ctx context.Context, signup *entity.Signup) error

	// ExistsByRaidAndCharacter reports whether a signup already exists for
	// the pair.
	ExistsByRaidAndCharacter(ctx context.Context, raidID, characterID int64) (bool, error)

	// CountByRaid returns the number of signups for a raid.
	CountByRaid(ctx context.Context, raidID int64) (int64, error)

	// FindDetailsByRaid lists a raid's signups joined with character and
	// owner fields, oldest signup first.
	FindDetailsByRaid(ctx context.Context, raidID int64) ([]*entity.SignupDetail, error)

	// DeleteByID removes a single signup.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteByRaid removes every signup referencing the raid.
	DeleteByRaid(ctx context.Context, raidID int64) error

	// AcquireRaidLock blocks until a transaction-scoped lock for the raid's
	// signup protocol is held. It serializes the capacity count against
	// concurrent inserts for the same raid and is released on commit or
	// rollback.
	AcquireRaidLock(ctx context.Context, raidID int64) error
}
