// Package model contains the GORM-specific persistence structs mapped to the
// database tables. They are converted to and from pure domain entities at the
// repository boundary.
package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	LineUserID string `gorm:"column:line_user_id;size:64;not null;uniqueIndex"`
	Name       string `gorm:"size:255;not null"`
	Picture    string `gorm:"size:512"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
