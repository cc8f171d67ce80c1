package usecases

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"matchtix/internal/domain/ticket"
)

var matchMentionPattern = regexp.MustCompile(`\bM\d+\b`)

// maxMentionedMatches caps how many referenced matches get expanded so a
// pathological message cannot turn into a hundred schedule lookups.
const maxMentionedMatches = 5

// buildContext assembles the structured context for the assistant: the
// requester's own tickets, details and attendees for every match number
// mentioned in the message, weekend fixtures when asked about weekends,
// and venue summaries when a seeded venue is named.
func (uc *ProcessMessageUseCase) buildContext(ctx context.Context, userID uint, username, message string) string {
	var b strings.Builder
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "Current user: %s\n", username)

	uc.writeUserTickets(ctx, &b, userID)

	mentioned := uniqueMatchMentions(message)
	for _, number := range mentioned {
		uc.writeMatchDetails(ctx, &b, number)
		uc.writeFriendsAttending(ctx, &b, userID, number)
	}

	if strings.Contains(strings.ToLower(message), "weekend") {
		uc.writeWeekendMatches(ctx, &b)
	}

	uc.writeVenueMatches(ctx, &b, message)

	return b.String()
}

func (uc *ProcessMessageUseCase) writeUserTickets(ctx context.Context, b *strings.Builder, userID uint) {
	tickets, err := uc.ticketRepo.ListByOwner(ctx, userID)
	if err != nil {
		uc.logger.Warnw("failed to load tickets for chat context", "user_id", userID, "error", err)
		return
	}
	if len(tickets) == 0 {
		b.WriteString("The user holds no tickets.\n")
		return
	}
	b.WriteString("The user's tickets:\n")
	for _, t := range tickets {
		fmt.Fprintf(b, "- %s (%s, %s, %s, quantity %d)\n",
			t.Name(), t.MatchNumber(), t.Date().Format("2006-01-02"), t.Venue(), t.Quantity())
	}
}

func (uc *ProcessMessageUseCase) writeMatchDetails(ctx context.Context, b *strings.Builder, number string) {
	m, err := uc.matchRepo.GetByNumber(ctx, number)
	if err != nil {
		return
	}
	fmt.Fprintf(b, "Match %s: %s on %s at %s (%s)\n",
		m.Number, m.Teams, m.Date.Format("2006-01-02"), m.Venue, m.MatchType)
}

func (uc *ProcessMessageUseCase) writeFriendsAttending(ctx context.Context, b *strings.Builder, userID uint, number string) {
	tickets, err := uc.ticketRepo.ListByMatch(ctx, number)
	if err != nil {
		return
	}
	names := uc.attendeeNames(ctx, tickets, userID)
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "Other users attending %s: %s\n", number, strings.Join(names, ", "))
}

func (uc *ProcessMessageUseCase) attendeeNames(ctx context.Context, tickets []*ticket.Ticket, exclude uint) []string {
	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		if t.OwnerID() == exclude {
			continue
		}
		if _, ok := seen[t.OwnerID()]; ok {
			continue
		}
		seen[t.OwnerID()] = struct{}{}
		ids = append(ids, t.OwnerID())
	}
	if len(ids) == 0 {
		return nil
	}
	owners, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(owners))
	for _, owner := range owners {
		names = append(names, owner.Username())
	}
	return names
}

func (uc *ProcessMessageUseCase) writeWeekendMatches(ctx context.Context, b *strings.Builder) {
	matches, err := uc.matchRepo.ListByDateRange(ctx, ticket.TournamentStart, ticket.TournamentEnd)
	if err != nil {
		return
	}
	wrote := false
	for _, m := range matches {
		if wd := m.Date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			continue
		}
		if !wrote {
			b.WriteString("Weekend matches:\n")
			wrote = true
		}
		fmt.Fprintf(b, "- %s: %s on %s at %s\n",
			m.Number, m.Teams, m.Date.Format("2006-01-02"), m.Venue)
	}
}

func (uc *ProcessMessageUseCase) writeVenueMatches(ctx context.Context, b *strings.Builder, message string) {
	city := mentionedCity(message)
	if city == "" {
		return
	}
	matches, err := uc.matchRepo.ListByVenue(ctx, city)
	if err != nil || len(matches) == 0 {
		return
	}
	fmt.Fprintf(b, "Matches in %s:\n", city)
	for _, m := range matches {
		fmt.Fprintf(b, "- %s: %s on %s at %s\n",
			m.Number, m.Teams, m.Date.Format("2006-01-02"), m.Venue)
	}
}

// hostCities are the city fragments that appear in seeded venue names.
var hostCities = []string{
	"Mexico City", "Guadalajara", "Monterrey",
	"Toronto", "Vancouver",
	"Atlanta", "Boston", "Dallas", "Houston", "Kansas City",
	"Los Angeles", "Miami", "New York", "Philadelphia",
	"San Francisco", "Seattle",
}

func mentionedCity(message string) string {
	lower := strings.ToLower(message)
	for _, city := range hostCities {
		if strings.Contains(lower, strings.ToLower(city)) {
			return city
		}
	}
	return ""
}

func uniqueMatchMentions(message string) []string {
	seen := map[string]struct{}{}
	var numbers []string
	for _, number := range matchMentionPattern.FindAllString(message, -1) {
		if _, ok := seen[number]; ok {
			continue
		}
		seen[number] = struct{}{}
		numbers = append(numbers, number)
		if len(numbers) == maxMentionedMatches {
			break
		}
	}
	return numbers
}
