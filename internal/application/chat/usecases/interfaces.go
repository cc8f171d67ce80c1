package usecases

import "context"

type ProcessMessageExecutor interface {
	Execute(ctx context.Context, cmd ProcessMessageCommand) (*ChatResult, error)
}
