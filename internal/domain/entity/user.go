// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an authenticated principal. A user is created on first login with
// an external LINE account and is never deleted by the service; subsequent
// logins refresh the display name and avatar.
type User struct {
	ID         int64     `json:"id"`           // Stable numeric identifier (database primary key).
	LineUserID string    `json:"line_user_id"` // External provider identifier, unique per user.
	Name       string    `json:"name"`         // Display name as reported by the provider.
	Picture    string    `json:"picture"`      // Avatar URL as reported by the provider.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
