package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"matchtix/internal/domain/user"
	"matchtix/internal/infrastructure/persistence/mappers"
	"matchtix/internal/infrastructure/persistence/models"
	"matchtix/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) user.SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	model := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByToken resolves an opaque token to a live session. Expired rows are
// treated as absent.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*user.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).Where("token = ? AND expires_at > ?", token, time.Now().UTC()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// Delete removes a session row. Deleting a token that does not exist is
// not an error; invalidation is idempotent.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions by user ID: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("expires_at <= ?", time.Now().UTC()).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
