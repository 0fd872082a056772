package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/pkg/metrics"
)

// MetricsMiddleware records request counts and latency per route template.
// Unmatched routes are grouped under one label to keep cardinality bounded.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
