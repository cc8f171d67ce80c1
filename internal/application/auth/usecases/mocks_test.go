package usecases

import (
	"context"

	"matchtix/internal/domain/user"
)

type mockUserRepository struct {
	createFunc           func(ctx context.Context, u *user.User) error
	getByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	getByIDsFunc         func(ctx context.Context, ids []uint) ([]*user.User, error)
	getByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	updateFunc           func(ctx context.Context, u *user.User) error
	existsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	countFunc            func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.getByIDsFunc != nil {
		return m.getByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFunc != nil {
		return m.existsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockSessionRepository struct {
	createFunc         func(ctx context.Context, session *user.Session) error
	getByTokenFunc     func(ctx context.Context, token string) (*user.Session, error)
	deleteFunc         func(ctx context.Context, token string) error
	deleteByUserIDFunc func(ctx context.Context, userID uint) error
	deleteExpiredFunc  func(ctx context.Context) error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *user.Session) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) GetByToken(ctx context.Context, token string) (*user.Session, error) {
	if m.getByTokenFunc != nil {
		return m.getByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, token string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, token)
	}
	return nil
}

func (m *mockSessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.deleteByUserIDFunc != nil {
		return m.deleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFunc != nil {
		return m.deleteExpiredFunc(ctx)
	}
	return nil
}

type mockPasswordHasher struct {
	hashFunc   func(password string) (string, error)
	verifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed-" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(password, hash)
	}
	return nil
}
