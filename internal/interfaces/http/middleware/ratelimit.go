package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"matchtix/internal/infrastructure/ratelimit"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

// LoginRateLimit throttles credential attempts per client IP. When Redis
// is unreachable the limiter fails open; losing throttling is preferable
// to locking every user out.
func LoginRateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("login:%s", c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if !allowed {
			log.Warnw("login rate limit exceeded", "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
