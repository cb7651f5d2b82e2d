package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/quizzme-server/internal/mocks"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/testutil"
)

func postGenerate(h *Generate, contentType, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.POST("/api/generate", h.Generate)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate_Generate(t *testing.T) {
	t.Parallel()

	cards := []model.Card{{Front: "What is ATP?", Back: "Energy currency"}}

	tests := []struct {
		name        string
		contentType string
		body        string
		setup       func(svc *mocks.GenerationService)
		wantStatus  int
		wantBody    string
	}{
		{
			name:        "plain text body",
			contentType: "text/plain",
			body:        "Cells make ATP.",
			setup: func(svc *mocks.GenerationService) {
				svc.On("Generate", mock.Anything, "user_1", "Cells make ATP.").Return(cards, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"front":"What is ATP?","back":"Energy currency"}]`,
		},
		{
			name:        "json body",
			contentType: "application/json",
			body:        `{"text":"Cells make ATP."}`,
			setup: func(svc *mocks.GenerationService) {
				svc.On("Generate", mock.Anything, "user_1", "Cells make ATP.").Return(cards, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"front":"What is ATP?","back":"Energy currency"}]`,
		},
		{
			name:        "blank text",
			contentType: "text/plain",
			body:        "   ",
			setup: func(svc *mocks.GenerationService) {
				svc.On("Generate", mock.Anything, "user_1", "   ").
					Return(nil, model.NewErrValidation("please enter some text to generate flashcards"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"please enter some text to generate flashcards"}`,
		},
		{
			name:        "generator down",
			contentType: "text/plain",
			body:        "Cells make ATP.",
			setup: func(svc *mocks.GenerationService) {
				svc.On("Generate", mock.Anything, "user_1", "Cells make ATP.").
					Return(nil, model.NewErrCollaboratorUnavailable("flashcard generator", errors.New("timeout")))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"flashcard generator is unavailable"}`,
		},
		{
			name:        "too long",
			contentType: "text/plain",
			body:        strings.Repeat("a", MaxGenerateBody+1),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantBody:    `{"error":"text is too long"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewGenerationService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewGenerate(svc, signedIn(t, "user_1"), testutil.MakeNoopLogger())

			w := postGenerate(h, tt.contentType, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestGenerate_SignedOut(t *testing.T) {
	t.Parallel()

	svc := mocks.NewGenerationService(t)
	h := NewGenerate(svc, signedIn(t, ""), testutil.MakeNoopLogger())

	w := postGenerate(h, "text/plain", "anything")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
