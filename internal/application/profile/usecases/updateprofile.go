package usecases

import (
	"context"

	"matchtix/internal/domain/user"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

type UpdateProfileCommand struct {
	UserID       uint
	FavoriteTeam string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*ProfileResult, error) {
	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := existing.ChangeFavoriteTeam(utils.SanitizeText(cmd.FavoriteTeam)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.logger.Infow("profile updated", "user_id", existing.ID())
	return newProfileResult(existing), nil
}
