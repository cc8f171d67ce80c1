package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchtix/internal/domain/user"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
)

func TestRegisterUseCase_Execute(t *testing.T) {
	tests := []struct {
		name        string
		cmd         RegisterCommand
		userRepo    *mockUserRepository
		sessionRepo *mockSessionRepository
		hasher      *mockPasswordHasher
		wantErr     bool
		errType     errors.ErrorType
	}{
		{
			name: "successful registration creates user and session",
			cmd:  RegisterCommand{Username: "alice", Password: "secret1"},
			userRepo: &mockUserRepository{
				createFunc: func(ctx context.Context, u *user.User) error {
					return u.SetID(7)
				},
			},
			sessionRepo: &mockSessionRepository{},
			hasher:      &mockPasswordHasher{},
		},
		{
			name:        "empty username rejected",
			cmd:         RegisterCommand{Username: "  ", Password: "secret1"},
			userRepo:    &mockUserRepository{},
			sessionRepo: &mockSessionRepository{},
			hasher:      &mockPasswordHasher{},
			wantErr:     true,
			errType:     errors.ErrorTypeValidation,
		},
		{
			name:        "short password rejected",
			cmd:         RegisterCommand{Username: "alice", Password: "abc"},
			userRepo:    &mockUserRepository{},
			sessionRepo: &mockSessionRepository{},
			hasher:      &mockPasswordHasher{},
			wantErr:     true,
			errType:     errors.ErrorTypeValidation,
		},
		{
			name:        "over-long username rejected",
			cmd:         RegisterCommand{Username: strings.Repeat("a", 81), Password: "secret1"},
			userRepo:    &mockUserRepository{},
			sessionRepo: &mockSessionRepository{},
			hasher:      &mockPasswordHasher{},
			wantErr:     true,
			errType:     errors.ErrorTypeValidation,
		},
		{
			name: "duplicate username surfaces conflict",
			cmd:  RegisterCommand{Username: "alice", Password: "secret1"},
			userRepo: &mockUserRepository{
				createFunc: func(ctx context.Context, u *user.User) error {
					return errors.NewConflictError("username already exists")
				},
			},
			sessionRepo: &mockSessionRepository{},
			hasher:      &mockPasswordHasher{},
			wantErr:     true,
			errType:     errors.ErrorTypeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUseCase(tt.userRepo, tt.sessionRepo, tt.hasher, 31*24*time.Hour, logger.NewLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr {
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.errType, appErr.Type)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(7), result.UserID)
			assert.Equal(t, "alice", result.Username)
			assert.Len(t, result.Token, 64)
			assert.WithinDuration(t, time.Now().UTC().Add(31*24*time.Hour), result.ExpiresAt, time.Minute)
		})
	}
}

func TestRegisterUseCase_Execute_StoresHashedPassword(t *testing.T) {
	var created *user.User
	userRepo := &mockUserRepository{
		createFunc: func(ctx context.Context, u *user.User) error {
			created = u
			return u.SetID(1)
		},
	}
	uc := NewRegisterUseCase(userRepo, &mockSessionRepository{}, &mockPasswordHasher{}, time.Hour, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{Username: "bob", Password: "secret1"})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "hashed-secret1", created.PasswordHash())
}
