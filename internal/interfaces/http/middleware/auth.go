package middleware

import (
	"github.com/gin-gonic/gin"

	"matchtix/internal/domain/user"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

// SessionAuthMiddleware gates routes behind a valid session. The token is
// read from the session cookie, with an Authorization header fallback for
// non-browser clients carrying the same opaque token.
type SessionAuthMiddleware struct {
	sessionRepo user.SessionRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewSessionAuthMiddleware(sessionRepo user.SessionRepository, userRepo user.Repository, log logger.Interface) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

func (m *SessionAuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c)
		if token == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}

		session, err := m.sessionRepo.GetByToken(c.Request.Context(), token)
		if err != nil || session == nil || session.IsExpired() {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired session"))
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), session.UserID)
		if err != nil {
			m.logger.Warnw("session references missing user", "user_id", session.UserID)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired session"))
			c.Abort()
			return
		}

		c.Set("user_id", u.ID())
		c.Set("username", u.Username())
		c.Next()
	}
}
