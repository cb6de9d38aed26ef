package middleware

import (
	"hospital-reception-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.RequestStarted()
		c.Next()

		// route templates keep path cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		done(c.Request.Method, path, c.Writer.Status())
	}
}
