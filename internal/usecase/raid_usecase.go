package usecase

import (
	"context"
	"time"

	"raidhub/internal/domain/entity"
)

// CreateRaidInput carries the fields for a new raid. CharacterID optionally
// names one of the creator's characters to sign up immediately.
type CreateRaidInput struct {
	Title       string
	Subtitle    string
	Boss        string
	StartTime   time.Time
	CharacterID *int64
}

// CreateRaidResult is the outcome of raid creation. Signup is nil when no
// auto-signup was requested or when it could not be completed; a missing
// signup never fails the raid creation itself.
type CreateRaidResult struct {
	Raid   *entity.Raid
	Signup *entity.Signup
}

// RaidUsecase defines the interface for raid management use cases.
type RaidUsecase interface {
	// ListRaids retrieves upcoming raids ascending by start time, including
	// creator display names.
	ListRaids(ctx context.Context) ([]*entity.RaidDetail, error)

	// CreateRaid creates a raid owned by the user, optionally signing up one
	// of their characters in the same breath.
	CreateRaid(ctx context.Context, userID int64, input *CreateRaidInput) (*CreateRaidResult, error)

	// DeleteRaid removes a raid and all of its signups in one transaction.
	// Only the creator may delete a raid.
	DeleteRaid(ctx context.Context, userID, raidID int64) error
}
