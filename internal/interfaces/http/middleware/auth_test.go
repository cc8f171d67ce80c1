package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchtix/internal/domain/user"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockSessionRepository struct {
	getByTokenFunc func(ctx context.Context, token string) (*user.Session, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, session *user.Session) error { return nil }
func (m *mockSessionRepository) GetByToken(ctx context.Context, token string) (*user.Session, error) {
	if m.getByTokenFunc != nil {
		return m.getByTokenFunc(ctx, token)
	}
	return nil, errors.NewNotFoundError("session not found")
}
func (m *mockSessionRepository) Delete(ctx context.Context, token string) error        { return nil }
func (m *mockSessionRepository) DeleteByUserID(ctx context.Context, userID uint) error { return nil }
func (m *mockSessionRepository) DeleteExpired(ctx context.Context) error               { return nil }

type mockUserRepository struct {
	getByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}
func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}
func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

func newAuthTestRouter(sessionRepo user.SessionRepository, userRepo user.Repository) *gin.Engine {
	m := NewSessionAuthMiddleware(sessionRepo, userRepo, logger.NewLogger())

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		userID := c.GetUint("user_id")
		username := c.GetString("username")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "username": username})
	})
	return router
}

func testSessionUser(t *testing.T) (*user.Session, *user.User) {
	t.Helper()
	u, err := user.ReconstructUser(1, "alice", "hash", "", time.Now(), time.Now())
	require.NoError(t, err)
	return &user.Session{
		Token:     "sessiontoken",
		UserID:    1,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, u
}

func TestRequireAuth_ValidCookie(t *testing.T) {
	session, u := testSessionUser(t)

	router := newAuthTestRouter(
		&mockSessionRepository{getByTokenFunc: func(ctx context.Context, token string) (*user.Session, error) {
			assert.Equal(t, session.Token, token)
			return session, nil
		}},
		&mockUserRepository{getByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		}},
	)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: session.Token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestRequireAuth_BearerFallback(t *testing.T) {
	session, u := testSessionUser(t)

	router := newAuthTestRouter(
		&mockSessionRepository{getByTokenFunc: func(ctx context.Context, token string) (*user.Session, error) {
			return session, nil
		}},
		&mockUserRepository{getByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		}},
	)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router := newAuthTestRouter(&mockSessionRepository{}, &mockUserRepository{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestRequireAuth_UnknownToken(t *testing.T) {
	router := newAuthTestRouter(&mockSessionRepository{}, &mockUserRepository{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: "bogus"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired session")
}

func TestRequireAuth_ExpiredSession(t *testing.T) {
	expired := &user.Session{
		Token:     "expiredtoken",
		UserID:    1,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}

	router := newAuthTestRouter(
		&mockSessionRepository{getByTokenFunc: func(ctx context.Context, token string) (*user.Session, error) {
			return expired, nil
		}},
		&mockUserRepository{},
	)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: expired.Token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_DeletedUser(t *testing.T) {
	session, _ := testSessionUser(t)

	router := newAuthTestRouter(
		&mockSessionRepository{getByTokenFunc: func(ctx context.Context, token string) (*user.Session, error) {
			return session, nil
		}},
		&mockUserRepository{},
	)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: session.Token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
