package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizzme-server/internal/logger"
)

// Logging logs every HTTP request and its outcome.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	l.logger.Debug("HTTP request started",
		"method", c.Request.Method,
		"path", c.Request.URL.Path)

	c.Next()

	status := c.Writer.Status()
	l.logger.Info("HTTP request completed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", status)

	if status >= http.StatusInternalServerError || len(c.Errors) > 0 {
		l.logger.Error("HTTP request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"error", c.Errors.String())
	}
}
