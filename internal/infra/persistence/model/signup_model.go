package model

import "time"

// SignupModel is the GORM-specific struct for the 'signups' table. The
// composite unique index on (raid_id, character_id) is the database backstop
// against the race where two concurrent requests both pass the duplicate
// check before either inserts.
type SignupModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RaidID      int64  `gorm:"not null;uniqueIndex:idx_signups_raid_character"`
	CharacterID int64  `gorm:"not null;uniqueIndex:idx_signups_raid_character"`
	Status      string `gorm:"size:32;not null;default:confirmed"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SignupModel) TableName() string {
	return "signups"
}
