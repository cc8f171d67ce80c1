package auth

import (
	"time"

	"matchtix/internal/application/auth/usecases"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=80"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CurrentUserResponse struct {
	UserID       uint      `json:"user_id"`
	Username     string    `json:"username"`
	FavoriteTeam string    `json:"favorite_team,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toAuthResponse(result *usecases.AuthResult) AuthResponse {
	return AuthResponse{
		UserID:    result.UserID,
		Username:  result.Username,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	}
}

func toCurrentUserResponse(result *usecases.CurrentUserResult) CurrentUserResponse {
	return CurrentUserResponse{
		UserID:       result.UserID,
		Username:     result.Username,
		FavoriteTeam: result.FavoriteTeam,
		CreatedAt:    result.CreatedAt,
	}
}
