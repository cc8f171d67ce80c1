package match

import (
	"context"
	"time"
)

// Repository defines read access to the seeded match schedule. The only
// write path is the idempotent seed performed at startup.
type Repository interface {
	// List retrieves the full schedule ordered numerically by match number
	List(ctx context.Context) ([]*Match, error)

	// GetByNumber retrieves a single match by its match number
	GetByNumber(ctx context.Context, number string) (*Match, error)

	// ListByDateRange retrieves matches within an inclusive date range
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*Match, error)

	// ListByVenue retrieves matches whose venue contains the given fragment
	ListByVenue(ctx context.Context, venue string) ([]*Match, error)

	// Seed inserts the schedule, upserting by match number
	Seed(ctx context.Context, matches []*Match) error

	// Count returns the number of seeded matches
	Count(ctx context.Context) (int64, error)
}
