package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/quizzme-server/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation -> 400",
			in:         model.NewErrValidation("please enter a name for your flashcard collection"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "please enter a name for your flashcard collection",
		},
		{
			name:       "duplicate -> 409",
			in:         model.NewErrDuplicateDeckName("Bio"),
			wantStatus: http.StatusConflict,
			wantMsg:    `flashcard collection "Bio" already exists`,
		},
		{
			name:       "unauthenticated -> 401",
			in:         model.NewErrUnauthenticated("sign in required"),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "sign in required",
		},
		{
			name:       "not found -> 404",
			in:         model.NewErrNotFound("export not found"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "export not found",
		},
		{
			name:       "bare not found -> 404",
			in:         fmt.Errorf("lookup: %w", model.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "not found",
		},
		{
			name:       "collaborator -> 503 without cause",
			in:         model.NewErrCollaboratorUnavailable("document store", errors.New("dial tcp 10.0.0.5:5432")),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "document store is unavailable",
		},
		{
			name:       "wrapped kind",
			in:         fmt.Errorf("save: %w", model.NewErrDuplicateDeckName("X")),
			wantStatus: http.StatusConflict,
			wantMsg:    `flashcard collection "X" already exists`,
		},
		{
			name:       "other -> 500",
			in:         errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			handleError(c, tt.in)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantMsg), w.Body.String())
			assert.True(t, c.IsAborted())
		})
	}
}
