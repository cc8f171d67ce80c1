package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"matchtix/internal/infrastructure/metrics"
)

// Metrics records request counts and latency per route. The route template
// is used rather than the raw path so /api/tickets/42 and /api/tickets/7
// land in the same series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
