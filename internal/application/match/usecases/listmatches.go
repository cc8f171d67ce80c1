package usecases

import (
	"context"
	"time"

	"matchtix/internal/domain/match"
)

// MatchResult is the public view of a schedule entry.
type MatchResult struct {
	Number    string
	Date      time.Time
	Venue     string
	Teams     string
	MatchType string
}

type ListMatchesQuery struct{}

type ListMatchesUseCase struct {
	matchRepo match.Repository
}

func NewListMatchesUseCase(matchRepo match.Repository) *ListMatchesUseCase {
	return &ListMatchesUseCase{matchRepo: matchRepo}
}

func (uc *ListMatchesUseCase) Execute(ctx context.Context, _ ListMatchesQuery) ([]*MatchResult, error) {
	matches, err := uc.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]*MatchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, newMatchResult(m))
	}
	return results, nil
}

func newMatchResult(m *match.Match) *MatchResult {
	return &MatchResult{
		Number:    m.Number,
		Date:      m.Date,
		Venue:     m.Venue,
		Teams:     m.Teams,
		MatchType: m.MatchType,
	}
}
