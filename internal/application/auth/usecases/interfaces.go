package usecases

import "context"

// PasswordHasher abstracts the salted slow-hash comparison so use cases
// stay independent of the bcrypt implementation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type CurrentUserExecutor interface {
	Execute(ctx context.Context, query CurrentUserQuery) (*CurrentUserResult, error)
}
