// Package match holds the read-only FIFA 2026 schedule reference data.
// Matches are seeded once and never mutated by end-user actions.
package match

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Match is a single entry in the tournament schedule, keyed by match number.
type Match struct {
	Number    string
	Date      time.Time
	Venue     string
	Teams     string
	MatchType string
}

func NewMatch(number string, date time.Time, venue, teams, matchType string) (*Match, error) {
	if number == "" {
		return nil, fmt.Errorf("match number is required")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}
	if venue == "" {
		return nil, fmt.Errorf("venue is required")
	}

	return &Match{
		Number:    number,
		Date:      date,
		Venue:     venue,
		Teams:     teams,
		MatchType: matchType,
	}, nil
}

// Ordinal returns the numeric part of the match number for sorting
// (M1, M2, M10 sort numerically, not lexically).
func (m *Match) Ordinal() int {
	n, err := strconv.Atoi(strings.TrimPrefix(m.Number, "M"))
	if err != nil {
		return 0
	}
	return n
}
