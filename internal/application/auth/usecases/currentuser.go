package usecases

import (
	"context"
	"time"

	"matchtix/internal/domain/user"
)

type CurrentUserQuery struct {
	UserID uint
}

type CurrentUserResult struct {
	UserID       uint
	Username     string
	FavoriteTeam string
	CreatedAt    time.Time
}

type CurrentUserUseCase struct {
	userRepo user.Repository
}

func NewCurrentUserUseCase(userRepo user.Repository) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: userRepo}
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, query CurrentUserQuery) (*CurrentUserResult, error) {
	existing, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return &CurrentUserResult{
		UserID:       existing.ID(),
		Username:     existing.Username(),
		FavoriteTeam: existing.FavoriteTeam(),
		CreatedAt:    existing.CreatedAt(),
	}, nil
}
