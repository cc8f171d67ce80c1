package usecases

import "context"

type ListMatchesExecutor interface {
	Execute(ctx context.Context, query ListMatchesQuery) ([]*MatchResult, error)
}

type GetMatchExecutor interface {
	Execute(ctx context.Context, query GetMatchQuery) (*MatchResult, error)
}
