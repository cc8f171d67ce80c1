package usecases

import (
	"context"

	"matchtix/internal/domain/user"
	"matchtix/internal/shared/logger"
)

type LogoutCommand struct {
	Token string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessionRepo: sessionRepo, logger: logger}
}

// Execute revokes the session token. Logging out with a token that no
// longer exists succeeds; the client outcome is the same either way.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.Token == "" {
		return nil
	}
	if err := uc.sessionRepo.Delete(ctx, cmd.Token); err != nil {
		uc.logger.Errorw("failed to delete session", "error", err)
		return err
	}
	return nil
}
