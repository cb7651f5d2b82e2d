package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/quizzme-server/internal/mocks"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(method, target, body string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Handle(method, strings.SplitN(target, "?", 2)[0], h)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func signedIn(t *testing.T, owner string) *mocks.ContextManager {
	cm := mocks.NewContextManager(t)
	cm.On("GetOwnerFromContext", mock.Anything).Return(owner, owner != "")
	return cm
}

func TestDeck_ListDecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		owner      string
		setup      func(svc *mocks.DeckService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "signed out",
			owner:      "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"sign in required"}`,
		},
		{
			name:  "empty index",
			owner: "user_1",
			setup: func(svc *mocks.DeckService) {
				svc.On("ListDecks", mock.Anything, "user_1").Return([]model.DeckSummary{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:  "decks in order",
			owner: "user_1",
			setup: func(svc *mocks.DeckService) {
				svc.On("ListDecks", mock.Anything, "user_1").
					Return([]model.DeckSummary{{Name: "Biology"}, {Name: "Spanish"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"name":"Biology"},{"name":"Spanish"}]`,
		},
		{
			name:  "store down",
			owner: "user_1",
			setup: func(svc *mocks.DeckService) {
				svc.On("ListDecks", mock.Anything, "user_1").
					Return(nil, model.NewErrCollaboratorUnavailable("document store", errors.New("boom")))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"document store is unavailable"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewDeckService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewDeck(svc, signedIn(t, tt.owner), testutil.MakeNoopLogger())

			w := serve(http.MethodGet, "/api/decks", "", h.ListDecks)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestDeck_SaveDeck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.DeckService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"name":"Biology","cards":[{"front":"Q1","back":"A1"},{"front":"Q2","back":"A2"}]}`,
			setup: func(svc *mocks.DeckService) {
				svc.On("SaveDeck", mock.Anything, model.SaveDeckParams{
					Owner: "user_1",
					Name:  "Biology",
					Cards: []model.Card{{Front: "Q1", Back: "A1"}, {Front: "Q2", Back: "A2"}},
				}).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"name":"Biology","cards":2}`,
		},
		{
			name: "duplicate name",
			body: `{"name":"Biology","cards":[]}`,
			setup: func(svc *mocks.DeckService) {
				svc.On("SaveDeck", mock.Anything, mock.AnythingOfType("model.SaveDeckParams")).
					Return(model.NewErrDuplicateDeckName("Biology"))
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"flashcard collection \"Biology\" already exists"}`,
		},
		{
			name: "empty name",
			body: `{"name":"","cards":[]}`,
			setup: func(svc *mocks.DeckService) {
				svc.On("SaveDeck", mock.Anything, mock.AnythingOfType("model.SaveDeckParams")).
					Return(model.NewErrValidation("please enter a name for your flashcard collection"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"please enter a name for your flashcard collection"}`,
		},
		{
			name:       "malformed payload",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid deck payload"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewDeckService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewDeck(svc, signedIn(t, "user_1"), testutil.MakeNoopLogger())

			w := serve(http.MethodPost, "/api/decks", tt.body, h.SaveDeck)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestDeck_GetDeckCards(t *testing.T) {
	t.Parallel()

	t.Run("cards in stored order", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewDeckService(t)
		svc.On("GetDeckCards", mock.Anything, "user_1", "Chapter 1").
			Return([]model.Card{{ID: "c1", Front: "Q1", Back: "A1"}, {ID: "c2", Front: "Q2", Back: "A2"}}, nil)
		h := NewDeck(svc, signedIn(t, "user_1"), testutil.MakeNoopLogger())

		w := serve(http.MethodGet, "/api/decks/cards?id=Chapter+1", "", h.GetDeckCards)
		require.Equal(t, http.StatusOK, w.Code)

		var cards []model.Card
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
		require.Len(t, cards, 2)
		assert.Equal(t, "Q1", cards[0].Front)
		assert.Equal(t, "c2", cards[1].ID)
	})

	t.Run("unknown deck is empty", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewDeckService(t)
		svc.On("GetDeckCards", mock.Anything, "user_1", "Nope").Return([]model.Card{}, nil)
		h := NewDeck(svc, signedIn(t, "user_1"), testutil.MakeNoopLogger())

		w := serve(http.MethodGet, "/api/decks/cards?id=Nope", "", h.GetDeckCards)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("signed out", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewDeckService(t)
		h := NewDeck(svc, signedIn(t, ""), testutil.MakeNoopLogger())

		w := serve(http.MethodGet, "/api/decks/cards?id=Nope", "", h.GetDeckCards)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
