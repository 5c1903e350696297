package entity

import "time"

// Raid is a scheduled event that characters sign up for. Raids are immutable
// after creation except for deletion, which cascades to their signups.
type Raid struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Boss      string    `json:"boss,omitempty"`
	StartTime time.Time `json:"start_time"`
	CreatedBy int64     `json:"created_by"` // User id of the creator.
	CreatedAt time.Time `json:"created_at"`
}

// RaidDetail is a read model joining a raid with its creator's display name.
type RaidDetail struct {
	Raid
	CreatedByName string `json:"created_by_name"`
}
