package middleware

import (
	"github.com/gin-gonic/gin"

	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

// Recovery turns panics into a 500 response with the standard error
// envelope instead of a dropped connection.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("panic recovered",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)
				utils.ErrorResponseWithError(c, errors.NewInternalError("internal server error"))
				c.Abort()
			}
		}()

		c.Next()
	}
}
