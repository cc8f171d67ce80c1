package usecases

import (
	"context"
	"strings"

	"matchtix/internal/domain/match"
	"matchtix/internal/shared/errors"
)

type GetMatchQuery struct {
	Number string
}

type GetMatchUseCase struct {
	matchRepo match.Repository
}

func NewGetMatchUseCase(matchRepo match.Repository) *GetMatchUseCase {
	return &GetMatchUseCase{matchRepo: matchRepo}
}

func (uc *GetMatchUseCase) Execute(ctx context.Context, query GetMatchQuery) (*MatchResult, error) {
	number := strings.TrimSpace(query.Number)
	if number == "" {
		return nil, errors.NewValidationError("match number is required")
	}

	m, err := uc.matchRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return newMatchResult(m), nil
}
