package entity

import "time"

// SignupStatusConfirmed is the only status currently produced. The column is
// kept as an extension point for waitlist-style states.
const SignupStatusConfirmed = "confirmed"

// Signup is the join record between a raid and a character. A (RaidID,
// CharacterID) pair is unique, and the number of signups per raid never
// exceeds the configured capacity.
type Signup struct {
	ID          int64     `json:"id"`
	RaidID      int64     `json:"raid_id"`
	CharacterID int64     `json:"character_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SignupDetail is a read model joining a signup with its character and the
// character's owner, as shown on raid rosters.
type SignupDetail struct {
	SignupID      int64  `json:"signup_id"`
	CharacterID   int64  `json:"character_id"`
	CharacterName string `json:"character_name"`
	Job           string `json:"job,omitempty"`
	Level         *int   `json:"level,omitempty"`
	UserID        int64  `json:"user_id"`
	UserName      string `json:"user_name"`
	UserPicture   string `json:"user_picture,omitempty"`
	Status        string `json:"status"`
}
