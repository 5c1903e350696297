package entity

import "time"

// Character is a game persona owned by exactly one user. At most one
// character per owner carries IsDefault = true.
type Character struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"` // Owning user; ownership gates every mutation and signup.
	Name      string    `json:"name"`
	Job       string    `json:"job,omitempty"`
	Level     *int      `json:"level,omitempty"` // Optional; non-negative when present.
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
