package usecases

import (
	"context"
	"strings"
	"time"

	"matchtix/internal/domain/user"
	"matchtix/internal/infrastructure/metrics"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
)

type RegisterCommand struct {
	Username string
	Password string
}

// AuthResult carries the authenticated user together with the freshly
// minted session token. Register logs the user in immediately.
type AuthResult struct {
	UserID    uint
	Username  string
	Token     string
	ExpiresAt time.Time
}

type RegisterUseCase struct {
	userRepo        user.Repository
	sessionRepo     user.SessionRepository
	hasher          PasswordHasher
	sessionLifetime time.Duration
	logger          logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	sessionLifetime time.Duration,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		hasher:          hasher,
		sessionLifetime: sessionLifetime,
		logger:          logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(strings.TrimSpace(cmd.Username), hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	session, err := user.NewSession(newUser.ID(), uc.sessionLifetime)
	if err != nil {
		uc.logger.Errorw("failed to create session", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	metrics.SessionCreated()

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())

	return &AuthResult{
		UserID:    newUser.ID(),
		Username:  newUser.Username(),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if strings.TrimSpace(cmd.Username) == "" {
		return errors.NewValidationError("username is required")
	}
	if err := user.ValidatePassword(cmd.Password); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
