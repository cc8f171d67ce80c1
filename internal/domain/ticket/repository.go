package ticket

import "context"

// Repository defines the interface for ticket data operations
type Repository interface {
	// Save persists a new ticket and assigns its generated ID
	Save(ctx context.Context, t *Ticket) error

	// GetByID retrieves a ticket by ID
	GetByID(ctx context.Context, id uint) (*Ticket, error)

	// List retrieves all tickets ordered by match date descending
	List(ctx context.Context) ([]*Ticket, error)

	// ListByOwner retrieves all tickets owned by a user
	ListByOwner(ctx context.Context, ownerID uint) ([]*Ticket, error)

	// ListByMatch retrieves all tickets referencing a match number
	ListByMatch(ctx context.Context, matchNumber string) ([]*Ticket, error)

	// Update persists changes to an existing ticket inside a single transaction
	Update(ctx context.Context, t *Ticket) error

	// Delete removes a ticket by ID
	Delete(ctx context.Context, id uint) error
}
