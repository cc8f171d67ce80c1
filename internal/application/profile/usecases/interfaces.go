package usecases

import "context"

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*ProfileResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*ProfileResult, error)
}
