package model

import "time"

// RaidModel is the GORM-specific struct for the 'raids' table.
type RaidModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"size:255;not null"`
	Subtitle  string `gorm:"size:255"`
	Boss      string `gorm:"size:255"`
	StartTime time.Time `gorm:"not null;index"`
	CreatedBy int64     `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RaidModel) TableName() string {
	return "raids"
}
