package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
)

// DeckService defines the deck store operations.
type DeckService interface {
	ListDecks(ctx context.Context, owner string) ([]model.DeckSummary, error)
	SaveDeck(ctx context.Context, params model.SaveDeckParams) error
	GetDeckCards(ctx context.Context, owner, name string) ([]model.Card, error)
}

// Deck handles the deck JSON API.
type Deck struct {
	deckService    DeckService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewDeck(deckService DeckService, contextManager model.ContextManager, logger *logger.Logger) *Deck {
	return &Deck{
		deckService:    deckService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type saveDeckRequest struct {
	Name  string       `json:"name"`
	Cards []model.Card `json:"cards"`
}

type saveDeckResponse struct {
	Name  string `json:"name"`
	Cards int    `json:"cards"`
}

// ListDecks returns the signed-in owner's deck summaries.
func (h *Deck) ListDecks(c *gin.Context) {
	owner, ok := requireOwner(c, h.contextManager)
	if !ok {
		return
	}

	decks, err := h.deckService.ListDecks(c.Request.Context(), owner)
	if err != nil {
		h.logger.Error("Deck handler: list decks failed",
			"owner", owner,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, decks)
}

// SaveDeck stores a new deck from {"name", "cards"}.
func (h *Deck) SaveDeck(c *gin.Context) {
	owner, ok := requireOwner(c, h.contextManager)
	if !ok {
		return
	}

	var req saveDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, model.NewErrValidation("invalid deck payload"))
		return
	}

	err := h.deckService.SaveDeck(c.Request.Context(), model.SaveDeckParams{
		Owner: owner,
		Name:  req.Name,
		Cards: req.Cards,
	})
	if err != nil {
		h.logger.Info("Deck handler: save deck rejected",
			"owner", owner,
			"name", req.Name,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saveDeckResponse{Name: req.Name, Cards: len(req.Cards)})
}

// GetDeckCards returns the cards of the deck named by the id query parameter.
func (h *Deck) GetDeckCards(c *gin.Context) {
	owner, ok := requireOwner(c, h.contextManager)
	if !ok {
		return
	}

	cards, err := h.deckService.GetDeckCards(c.Request.Context(), owner, c.Query("id"))
	if err != nil {
		h.logger.Error("Deck handler: get deck cards failed",
			"owner", owner,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

func requireOwner(c *gin.Context, cm model.ContextManager) (string, bool) {
	owner, ok := cm.GetOwnerFromContext(c.Request.Context())
	if !ok {
		handleError(c, model.NewErrUnauthenticated("sign in required"))
		return "", false
	}
	return owner, true
}
