package usecases

import (
	"context"
	"strings"
	"time"

	"matchtix/internal/domain/user"
	"matchtix/internal/infrastructure/auth"
	"matchtix/internal/infrastructure/metrics"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginUseCase struct {
	userRepo        user.Repository
	sessionRepo     user.SessionRepository
	hasher          PasswordHasher
	sessionLifetime time.Duration
	logger          logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	sessionLifetime time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		hasher:          hasher,
		sessionLifetime: sessionLifetime,
		logger:          logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(cmd.Username))
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Verify against a throwaway hash so unknown usernames take
			// the same time as wrong passwords.
			_ = uc.hasher.Verify(cmd.Password, auth.DummyHash)
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", existing.Username())
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	session, err := user.NewSession(existing.ID(), uc.sessionLifetime)
	if err != nil {
		uc.logger.Errorw("failed to create session", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	metrics.SessionCreated()

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "username", existing.Username())

	return &AuthResult{
		UserID:    existing.ID(),
		Username:  existing.Username(),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (uc *LoginUseCase) validateCommand(cmd LoginCommand) error {
	if strings.TrimSpace(cmd.Username) == "" {
		return errors.NewValidationError("username is required")
	}
	if cmd.Password == "" {
		return errors.NewValidationError("password is required")
	}
	return nil
}
