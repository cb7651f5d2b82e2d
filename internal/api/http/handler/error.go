package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizzme-server/internal/model"
)

// statusFor maps an error kind to an HTTP status and a user-facing message.
func statusFor(err error) (int, string) {
	var e *model.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case model.KindValidation:
			return http.StatusBadRequest, e.Message
		case model.KindDuplicateDeckName:
			return http.StatusConflict, e.Message
		case model.KindUnauthenticated:
			return http.StatusUnauthorized, e.Message
		case model.KindNotFound:
			return http.StatusNotFound, e.Message
		case model.KindCollaboratorUnavailable:
			return http.StatusServiceUnavailable, e.Message
		}
	}

	if errors.Is(err, model.ErrNotFound) {
		return http.StatusNotFound, "not found"
	}

	return http.StatusInternalServerError, "internal server error"
}

func handleError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
