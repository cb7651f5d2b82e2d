package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizzme-server/internal/observability"
)

// Metrics records request counts and latency by route template.
func Metrics(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	observability.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	observability.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}
