// Package usecase defines the application service interfaces consumed by the
// delivery layer, together with their input and result types.
package usecase

import (
	"context"

	"raidhub/internal/domain/entity"
)

// LineLoginInput carries the verified LINE profile fields supplied at login.
type LineLoginInput struct {
	LineUserID string
	Name       string
	Picture    string
}

// LineLoginResult is the outcome of a successful login: the stateless access
// token plus the up-to-date user record.
type LineLoginResult struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for the login flow.
type AuthUsecase interface {
	// LoginWithLine upserts the user identified by the LINE user id and mints
	// a fresh access token. First login creates the user; later logins
	// refresh the display name and avatar.
	LoginWithLine(ctx context.Context, input *LineLoginInput) (*LineLoginResult, error)
}
