package models

import (
	"time"

	"gorm.io/datatypes"
)

// MatchModel represents the database persistence model for the seeded
// FIFA 2026 match schedule.
type MatchModel struct {
	ID        uint           `gorm:"primaryKey"`
	Number    string         `gorm:"uniqueIndex;size:10;not null"`
	Date      datatypes.Date `gorm:"not null;index"`
	Venue     string         `gorm:"size:100;not null"`
	Teams     string         `gorm:"size:120"`
	MatchType string         `gorm:"size:50"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (MatchModel) TableName() string {
	return "matches"
}
