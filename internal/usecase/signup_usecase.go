package usecase

import (
	"context"

	"raidhub/internal/domain/entity"
)

// SignupUsecase defines the interface for raid signup use cases.
type SignupUsecase interface {
	// ListSignups retrieves a raid's roster: signups joined with character
	// and owner fields, oldest first.
	ListSignups(ctx context.Context, raidID int64) ([]*entity.SignupDetail, error)

	// CreateSignup signs one of the user's characters up for a raid and
	// publishes a signup.created event. The capacity and duplicate checks
	// run inside one transaction serialized per raid.
	CreateSignup(ctx context.Context, userID, raidID, characterID int64) (*entity.Signup, error)

	// CreateSignupWithoutNotification behaves like CreateSignup but skips the
	// event, for flows that publish their own combined event.
	CreateSignupWithoutNotification(ctx context.Context, userID, raidID, characterID int64) (*entity.Signup, error)

	// CancelSignup removes the user's signup for the raid, whichever of their
	// characters holds it, and publishes a signup.cancelled event.
	CancelSignup(ctx context.Context, userID, raidID int64) error
}
