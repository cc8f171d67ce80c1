// Package seeds holds the code-defined FIFA 2026 match schedule used to
// populate the reference data table. Seeding is idempotent: rows are
// upserted by match number.
package seeds

import (
	"fmt"
	"time"

	"matchtix/internal/domain/match"
)

type seedRow struct {
	Number    string
	Date      string
	Venue     string
	Teams     string
	MatchType string
}

// Matches returns the full 104-match tournament schedule as domain entities.
func Matches() ([]*match.Match, error) {
	matches := make([]*match.Match, 0, len(scheduleRows))
	for _, row := range scheduleRows {
		date, err := time.ParseInLocation("2006-01-02", row.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid seed date for %s: %w", row.Number, err)
		}
		m, err := match.NewMatch(row.Number, date, row.Venue, row.Teams, row.MatchType)
		if err != nil {
			return nil, fmt.Errorf("invalid seed row %s: %w", row.Number, err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

var scheduleRows = []seedRow{
	{"M1", "2026-06-11", "Estadio Azteca, Mexico City", "Mexico vs TBD", "Group Stage"},
	{"M2", "2026-06-11", "Estadio Akron, Guadalajara", "TBD vs TBD", "Group Stage"},
	{"M3", "2026-06-12", "Estadio BBVA, Monterrey", "Canada vs TBD", "Group Stage"},
	{"M4", "2026-06-12", "Mercedes-Benz Stadium, Atlanta", "TBD vs TBD", "Group Stage"},
	{"M5", "2026-06-13", "Gillette Stadium, Boston", "United States vs TBD", "Group Stage"},
	{"M6", "2026-06-13", "AT&T Stadium, Dallas", "TBD vs TBD", "Group Stage"},
	{"M7", "2026-06-13", "NRG Stadium, Houston", "TBD vs TBD", "Group Stage"},
	{"M8", "2026-06-13", "Arrowhead Stadium, Kansas City", "TBD vs TBD", "Group Stage"},
	{"M9", "2026-06-13", "SoFi Stadium, Los Angeles", "TBD vs TBD", "Group Stage"},
	{"M10", "2026-06-14", "Hard Rock Stadium, Miami", "TBD vs TBD", "Group Stage"},
	{"M11", "2026-06-14", "MetLife Stadium, New York New Jersey", "TBD vs TBD", "Group Stage"},
	{"M12", "2026-06-14", "Lincoln Financial Field, Philadelphia", "TBD vs TBD", "Group Stage"},
	{"M13", "2026-06-14", "Levi's Stadium, San Francisco Bay Area", "TBD vs TBD", "Group Stage"},
	{"M14", "2026-06-14", "Lumen Field, Seattle", "TBD vs TBD", "Group Stage"},
	{"M15", "2026-06-15", "BMO Field, Toronto", "TBD vs TBD", "Group Stage"},
	{"M16", "2026-06-15", "BC Place, Vancouver", "TBD vs TBD", "Group Stage"},
	{"M17", "2026-06-15", "Estadio Azteca, Mexico City", "TBD vs TBD", "Group Stage"},
	{"M18", "2026-06-15", "Estadio Akron, Guadalajara", "TBD vs TBD", "Group Stage"},
	{"M19", "2026-06-15", "Estadio BBVA, Monterrey", "TBD vs TBD", "Group Stage"},
	{"M20", "2026-06-16", "Mercedes-Benz Stadium, Atlanta", "TBD vs TBD", "Group Stage"},
	{"M21", "2026-06-16", "Gillette Stadium, Boston", "TBD vs TBD", "Group Stage"},
	{"M22", "2026-06-16", "AT&T Stadium, Dallas", "TBD vs TBD", "Group Stage"},
	{"M23", "2026-06-16", "NRG Stadium, Houston", "TBD vs TBD", "Group Stage"},
	{"M24", "2026-06-16", "Arrowhead Stadium, Kansas City", "TBD vs TBD", "Group Stage"},
	{"M25", "2026-06-17", "SoFi Stadium, Los Angeles", "TBD vs TBD", "Group Stage"},
	{"M26", "2026-06-17", "Hard Rock Stadium, Miami", "TBD vs TBD", "Group Stage"},
	{"M27", "2026-06-17", "MetLife Stadium, New York New Jersey", "TBD vs TBD", "Group Stage"},
	{"M28", "2026-06-17", "Lincoln Financial Field, Philadelphia", "TBD vs TBD", "Group Stage"},
	{"M29", "2026-06-17", "Levi's Stadium, San Francisco Bay Area", "TBD vs TBD", "Group Stage"},
	{"M30", "2026-06-18", "Lumen Field, Seattle", "TBD vs TBD", "Group Stage"},
	{"M31", "2026-06-18", "BMO Field, Toronto", "TBD vs TBD", "Group Stage"},
	{"M32", "2026-06-18", "BC Place, Vancouver", "TBD vs TBD", "Group Stage"},
	{"M33", "2026-06-18", "Estadio Azteca, Mexico City", "TBD vs TBD", "Group Stage"},
	{"M34", "2026-06-18", "Estadio Akron, Guadalajara", "TBD vs TBD", "Group Stage"},
	{"M35", "2026-06-19", "Estadio BBVA, Monterrey", "TBD vs TBD", "Group Stage"},
	{"M36", "2026-06-19", "Mercedes-Benz Stadium, Atlanta", "TBD vs TBD", "Group Stage"},
	{"M37", "2026-06-19", "Gillette Stadium, Boston", "TBD vs TBD", "Group Stage"},
	{"M38", "2026-06-19", "AT&T Stadium, Dallas", "TBD vs TBD", "Group Stage"},
	{"M39", "2026-06-19", "NRG Stadium, Houston", "TBD vs TBD", "Group Stage"},
	{"M40", "2026-06-20", "Arrowhead Stadium, Kansas City", "TBD vs TBD", "Group Stage"},
	{"M41", "2026-06-20", "SoFi Stadium, Los Angeles", "TBD vs TBD", "Group Stage"},
	{"M42", "2026-06-20", "Hard Rock Stadium, Miami", "TBD vs TBD", "Group Stage"},
	{"M43", "2026-06-20", "MetLife Stadium, New York New Jersey", "TBD vs TBD", "Group Stage"},
	{"M44", "2026-06-20", "Lincoln Financial Field, Philadelphia", "TBD vs TBD", "Group Stage"},
	{"M45", "2026-06-21", "Levi's Stadium, San Francisco Bay Area", "TBD vs TBD", "Group Stage"},
	{"M46", "2026-06-21", "Lumen Field, Seattle", "TBD vs TBD", "Group Stage"},
	{"M47", "2026-06-21", "BMO Field, Toronto", "TBD vs TBD", "Group Stage"},
	{"M48", "2026-06-21", "BC Place, Vancouver", "TBD vs TBD", "Group Stage"},
	{"M49", "2026-06-22", "Estadio Azteca, Mexico City", "TBD vs TBD", "Group Stage"},
	{"M50", "2026-06-22", "Estadio Akron, Guadalajara", "TBD vs TBD", "Group Stage"},
	{"M51", "2026-06-22", "Estadio BBVA, Monterrey", "TBD vs TBD", "Group Stage"},
	{"M52", "2026-06-22", "Mercedes-Benz Stadium, Atlanta", "TBD vs TBD", "Group Stage"},
	{"M53", "2026-06-23", "Gillette Stadium, Boston", "TBD vs TBD", "Group Stage"},
	{"M54", "2026-06-23", "AT&T Stadium, Dallas", "TBD vs TBD", "Group Stage"},
	{"M55", "2026-06-23", "NRG Stadium, Houston", "TBD vs TBD", "Group Stage"},
	{"M56", "2026-06-23", "Arrowhead Stadium, Kansas City", "TBD vs TBD", "Group Stage"},
	{"M57", "2026-06-23", "SoFi Stadium, Los Angeles", "TBD vs TBD", "Group Stage"},
	{"M58", "2026-06-24", "Hard Rock Stadium, Miami", "TBD vs TBD", "Group Stage"},
	{"M59", "2026-06-24", "MetLife Stadium, New York New Jersey", "TBD vs TBD", "Group Stage"},
	{"M60", "2026-06-24", "Lincoln Financial Field, Philadelphia", "TBD vs TBD", "Group Stage"},
	{"M61", "2026-06-24", "Levi's Stadium, San Francisco Bay Area", "TBD vs TBD", "Group Stage"},
	{"M62", "2026-06-24", "Lumen Field, Seattle", "TBD vs TBD", "Group Stage"},
	{"M63", "2026-06-25", "BMO Field, Toronto", "TBD vs TBD", "Group Stage"},
	{"M64", "2026-06-25", "BC Place, Vancouver", "TBD vs TBD", "Group Stage"},
	{"M65", "2026-06-25", "Estadio Azteca, Mexico City", "TBD vs TBD", "Group Stage"},
	{"M66", "2026-06-25", "Estadio Akron, Guadalajara", "TBD vs TBD", "Group Stage"},
	{"M67", "2026-06-25", "Estadio BBVA, Monterrey", "TBD vs TBD", "Group Stage"},
	{"M68", "2026-06-26", "Mercedes-Benz Stadium, Atlanta", "TBD vs TBD", "Group Stage"},
	{"M69", "2026-06-26", "Gillette Stadium, Boston", "TBD vs TBD", "Group Stage"},
	{"M70", "2026-06-26", "AT&T Stadium, Dallas", "TBD vs TBD", "Group Stage"},
	{"M71", "2026-06-26", "NRG Stadium, Houston", "TBD vs TBD", "Group Stage"},
	{"M72", "2026-06-26", "Arrowhead Stadium, Kansas City", "TBD vs TBD", "Group Stage"},
	{"M73", "2026-06-28", "SoFi Stadium, Los Angeles", "TBD vs TBD", "Round of 32"},
	{"M74", "2026-06-28", "Hard Rock Stadium, Miami", "TBD vs TBD", "Round of 32"},
	{"M75", "2026-06-28", "MetLife Stadium, New York New Jersey", "TBD vs TBD", "Round of 32"},
	{"M76", "2026-06-29", "Lincoln Financial Field, Philadelphia", "TBD vs TBD", "Round of 32"},
	{"M77", "2026-06-29", "Levi's Stadium, San Francisco Bay Area", "TBD vs TBD", "Round of 32"},
	{"M78", "2026-06-29", "Lumen Field, Seattle", "TBD vs TBD", "Round of 32"},
	{"M79", "2026-06-30", "BMO Field, Toronto", "TBD vs TBD", "Round of 32"},
	{"M80", "2026-06-30", "BC Place, Vancouver", "TBD vs TBD", "Round of 32"},
	{"M81", "2026-06-30", "Estadio Azteca, Mexico City", "TBD vs TBD", "Round of 32"},
	{"M82", "2026-07-01", "Estadio Akron, Guadalajara", "TBD vs TBD", "Round of 32"},
	{"M83", "2026-07-01", "Estadio BBVA, Monterrey", "TBD vs TBD", "Round of 32"},
	{"M84", "2026-07-01", "Mercedes-Benz Stadium, Atlanta", "TBD vs TBD", "Round of 32"},
	{"M85", "2026-07-02", "Gillette Stadium, Boston", "TBD vs TBD", "Round of 32"},
	{"M86", "2026-07-02", "AT&T Stadium, Dallas", "TBD vs TBD", "Round of 32"},
	{"M87", "2026-07-03", "NRG Stadium, Houston", "TBD vs TBD", "Round of 32"},
	{"M88", "2026-07-03", "Arrowhead Stadium, Kansas City", "TBD vs TBD", "Round of 32"},
	{"M89", "2026-07-04", "SoFi Stadium, Los Angeles", "TBD vs TBD", "Round of 16"},
	{"M90", "2026-07-04", "Hard Rock Stadium, Miami", "TBD vs TBD", "Round of 16"},
	{"M91", "2026-07-05", "MetLife Stadium, New York New Jersey", "TBD vs TBD", "Round of 16"},
	{"M92", "2026-07-05", "Lincoln Financial Field, Philadelphia", "TBD vs TBD", "Round of 16"},
	{"M93", "2026-07-06", "Levi's Stadium, San Francisco Bay Area", "TBD vs TBD", "Round of 16"},
	{"M94", "2026-07-06", "Lumen Field, Seattle", "TBD vs TBD", "Round of 16"},
	{"M95", "2026-07-07", "BMO Field, Toronto", "TBD vs TBD", "Round of 16"},
	{"M96", "2026-07-07", "BC Place, Vancouver", "TBD vs TBD", "Round of 16"},
	{"M97", "2026-07-09", "Estadio Azteca, Mexico City", "TBD vs TBD", "Quarter-final"},
	{"M98", "2026-07-09", "Estadio Akron, Guadalajara", "TBD vs TBD", "Quarter-final"},
	{"M99", "2026-07-10", "Estadio BBVA, Monterrey", "TBD vs TBD", "Quarter-final"},
	{"M100", "2026-07-11", "Mercedes-Benz Stadium, Atlanta", "TBD vs TBD", "Quarter-final"},
	{"M101", "2026-07-14", "AT&T Stadium, Dallas", "TBD vs TBD", "Semi-final"},
	{"M102", "2026-07-15", "Mercedes-Benz Stadium, Atlanta", "TBD vs TBD", "Semi-final"},
	{"M103", "2026-07-18", "Hard Rock Stadium, Miami", "TBD vs TBD", "Third Place Play-off"},
	{"M104", "2026-07-19", "MetLife Stadium, New York New Jersey", "TBD vs TBD", "Final"},
}
