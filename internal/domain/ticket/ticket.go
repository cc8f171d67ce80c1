package ticket

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength     = 100
	maxVenueLength    = 100
	maxTeamsLength    = 120
	maxCategoryLength = 50
)

// Tournament date range for FIFA 2026; every ticket's match date must fall inside it.
var (
	TournamentStart = time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC)
	TournamentEnd   = time.Date(2026, time.July, 19, 0, 0, 0, 0, time.UTC)
)

var matchNumberPattern = regexp.MustCompile(`^M\d+$`)

// Ticket represents a match ticket held by a user. The owner is fixed at
// creation; only the owner may mutate or delete the ticket, while any
// authenticated user may read it.
type Ticket struct {
	id          uint
	ownerID     uint
	name        string
	matchNumber string
	date        time.Time
	venue       string
	teams       string
	matchType   string
	category    string
	quantity    int
	info        string
	price       *decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	ownerID uint,
	name string,
	matchNumber string,
	date time.Time,
	venue string,
	category string,
	quantity int,
) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := ValidateMatchNumber(matchNumber); err != nil {
		return nil, err
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if err := validateVenue(venue); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	now := time.Now().UTC()
	return &Ticket{
		ownerID:     ownerID,
		name:        strings.TrimSpace(name),
		matchNumber: matchNumber,
		date:        date,
		venue:       strings.TrimSpace(venue),
		category:    strings.TrimSpace(category),
		quantity:    quantity,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	ownerID uint,
	name string,
	matchNumber string,
	date time.Time,
	venue string,
	teams string,
	matchType string,
	category string,
	quantity int,
	info string,
	price *decimal.Decimal,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		matchNumber: matchNumber,
		date:        date,
		venue:       venue,
		teams:       teams,
		matchType:   matchType,
		category:    category,
		quantity:    quantity,
		info:        info,
		price:       price,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) OwnerID() uint            { return t.ownerID }
func (t *Ticket) Name() string             { return t.name }
func (t *Ticket) MatchNumber() string      { return t.matchNumber }
func (t *Ticket) Date() time.Time          { return t.date }
func (t *Ticket) Venue() string            { return t.venue }
func (t *Ticket) Teams() string            { return t.teams }
func (t *Ticket) MatchType() string        { return t.matchType }
func (t *Ticket) Category() string         { return t.category }
func (t *Ticket) Quantity() int            { return t.quantity }
func (t *Ticket) Info() string             { return t.info }
func (t *Ticket) Price() *decimal.Decimal  { return t.price }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }

// IsOwnedBy reports whether the given user is the ticket's owner.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.ownerID == userID
}

// SetID assigns the generated ID after persistence
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	t.name = strings.TrimSpace(name)
	t.touch()
	return nil
}

func (t *Ticket) ChangeMatch(matchNumber string, date time.Time, venue string) error {
	if err := ValidateMatchNumber(matchNumber); err != nil {
		return err
	}
	if err := validateDate(date); err != nil {
		return err
	}
	if err := validateVenue(venue); err != nil {
		return err
	}
	t.matchNumber = matchNumber
	t.date = date
	t.venue = strings.TrimSpace(venue)
	t.touch()
	return nil
}

func (t *Ticket) ChangeCategory(category string) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	t.category = strings.TrimSpace(category)
	t.touch()
	return nil
}

func (t *Ticket) ChangeQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	t.quantity = quantity
	t.touch()
	return nil
}

func (t *Ticket) SetTeams(teams string) error {
	if len(teams) > maxTeamsLength {
		return fmt.Errorf("teams exceeds maximum length of %d characters", maxTeamsLength)
	}
	t.teams = strings.TrimSpace(teams)
	t.touch()
	return nil
}

func (t *Ticket) SetMatchType(matchType string) error {
	if len(matchType) > maxCategoryLength {
		return fmt.Errorf("match type exceeds maximum length of %d characters", maxCategoryLength)
	}
	t.matchType = strings.TrimSpace(matchType)
	t.touch()
	return nil
}

func (t *Ticket) SetInfo(info string) {
	t.info = info
	t.touch()
}

// SetPrice sets the optional ticket price. A nil price means "not recorded",
// which is distinct from a zero price.
func (t *Ticket) SetPrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return fmt.Errorf("ticket price cannot be negative")
	}
	t.price = price
	t.touch()
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now().UTC()
}

// ValidateMatchNumber checks the "M" plus digits format (M1, M23, M104).
func ValidateMatchNumber(matchNumber string) error {
	if matchNumber == "" {
		return fmt.Errorf("match number is required")
	}
	if !matchNumberPattern.MatchString(matchNumber) {
		return fmt.Errorf("match number must start with M followed by digits (e.g., M1, M23)")
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	return nil
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if date.Before(TournamentStart) || date.After(TournamentEnd) {
		return fmt.Errorf("date must be between %s and %s",
			TournamentStart.Format("January 2, 2006"), TournamentEnd.Format("January 2, 2006"))
	}
	return nil
}

func validateVenue(venue string) error {
	venue = strings.TrimSpace(venue)
	if venue == "" {
		return fmt.Errorf("venue is required")
	}
	if len(venue) > maxVenueLength {
		return fmt.Errorf("venue exceeds maximum length of %d characters", maxVenueLength)
	}
	return nil
}

func validateCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("ticket category is required")
	}
	if len(category) > maxCategoryLength {
		return fmt.Errorf("ticket category exceeds maximum length of %d characters", maxCategoryLength)
	}
	return nil
}
