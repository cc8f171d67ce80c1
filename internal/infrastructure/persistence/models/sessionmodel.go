package models

import "time"

// SessionModel represents the database persistence model for sessions.
// Sessions live in the database rather than process memory so that
// restarts and multiple instances share authentication state.
type SessionModel struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
