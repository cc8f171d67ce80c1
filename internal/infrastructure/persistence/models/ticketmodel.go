package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TicketModel represents the database persistence model for tickets.
type TicketModel struct {
	ID          uint             `gorm:"primaryKey"`
	OwnerID     uint             `gorm:"not null;index"`
	Name        string           `gorm:"size:100;not null"`
	MatchNumber string           `gorm:"size:20;not null;index"`
	Date        datatypes.Date   `gorm:"not null;index"`
	Venue       string           `gorm:"size:100;not null"`
	Teams       string           `gorm:"size:120"`
	MatchType   string           `gorm:"size:50"`
	Category    string           `gorm:"size:50;not null"`
	Quantity    int              `gorm:"not null"`
	Info        string           `gorm:"type:text"`
	Price       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Note: no foreign key constraints or associations; ownership
	// integrity is enforced by the application layer.
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}
