package model

import "time"

// CharacterModel is the GORM-specific struct for the 'characters' table.
// The default-exclusivity invariant (at most one is_default per user) is
// enforced by the use case inside a transaction holding the owner lock.
type CharacterModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	Name      string `gorm:"size:255;not null"`
	Job       string `gorm:"size:255"`
	Level     *int
	IsDefault bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CharacterModel) TableName() string {
	return "characters"
}
