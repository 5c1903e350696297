// Package repository defines the persistence interfaces consumed by the use
// case layer, keeping it independent of any specific database driver.
package repository

import "raidhub/internal/errors"

// Sentinel errors returned by repositories for absent records. Use cases map
// these to the typed domain errors surfaced to callers.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCharacterNotFound = errors.New("character not found")
	ErrRaidNotFound      = errors.New("raid not found")
	ErrSignupNotFound    = errors.New("signup not found")

	// ErrDuplicateSignup reports a unique-constraint hit on the
	// (raid_id, character_id) pair. It is the database-level backstop for
	// the duplicate check performed inside the signup transaction.
	ErrDuplicateSignup = errors.New("signup already exists for this raid and character")
)
