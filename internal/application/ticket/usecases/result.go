package usecases

import (
	"time"

	"github.com/shopspring/decimal"

	"matchtix/internal/domain/ticket"
)

// TicketResult is the application-level view of a ticket. OwnerName is
// resolved from the users table so list responses can show who holds
// each ticket; IsOwner is relative to the requesting user.
type TicketResult struct {
	ID          uint
	Name        string
	MatchNumber string
	Date        time.Time
	Venue       string
	Teams       string
	MatchType   string
	Category    string
	Quantity    int
	Info        string
	Price       *decimal.Decimal
	OwnerID     uint
	OwnerName   string
	IsOwner     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newTicketResult(t *ticket.Ticket, ownerName string, requesterID uint) *TicketResult {
	return &TicketResult{
		ID:          t.ID(),
		Name:        t.Name(),
		MatchNumber: t.MatchNumber(),
		Date:        t.Date(),
		Venue:       t.Venue(),
		Teams:       t.Teams(),
		MatchType:   t.MatchType(),
		Category:    t.Category(),
		Quantity:    t.Quantity(),
		Info:        t.Info(),
		Price:       t.Price(),
		OwnerID:     t.OwnerID(),
		OwnerName:   ownerName,
		IsOwner:     t.IsOwnedBy(requesterID),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}
