package usecases

import (
	"context"
	"time"

	"matchtix/internal/domain/user"
)

type ProfileResult struct {
	UserID       uint
	Username     string
	FavoriteTeam string
	CreatedAt    time.Time
}

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
}

func NewGetProfileUseCase(userRepo user.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*ProfileResult, error) {
	existing, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return newProfileResult(existing), nil
}

func newProfileResult(u *user.User) *ProfileResult {
	return &ProfileResult{
		UserID:       u.ID(),
		Username:     u.Username(),
		FavoriteTeam: u.FavoriteTeam(),
		CreatedAt:    u.CreatedAt(),
	}
}
