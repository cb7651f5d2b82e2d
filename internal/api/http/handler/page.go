package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/study"
	"github.com/dtroode/quizzme-server/internal/web"
)

// SessionReader reads checkout sessions for the result page.
type SessionReader interface {
	GetSession(ctx context.Context, id string) (model.CheckoutSession, error)
}

// Page renders the HTML pages. Templates are registered on the engine with
// web.Templates.
type Page struct {
	deckService       DeckService
	generationService GenerationService
	sessions          SessionReader
	contextManager    model.ContextManager
	logger            *logger.Logger
}

func NewPage(
	deckService DeckService,
	generationService GenerationService,
	sessions SessionReader,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Page {
	return &Page{
		deckService:       deckService,
		generationService: generationService,
		sessions:          sessions,
		contextManager:    contextManager,
		logger:            logger,
	}
}

type createView struct {
	Error     string
	Text      string
	Name      string
	CardLines string
	Cards     []model.Card
}

// Dashboard lists the owner's decks.
func (h *Page) Dashboard(c *gin.Context) {
	owner, ok := h.contextManager.GetOwnerFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/Get-Started")
		return
	}

	decks, err := h.deckService.ListDecks(c.Request.Context(), owner)
	if err != nil {
		status, msg := statusFor(err)
		h.logger.Error("Page handler: dashboard failed",
			"owner", owner,
			"error", err.Error())
		c.HTML(status, web.PageDashboard, gin.H{"Error": msg})
		return
	}

	c.HTML(http.StatusOK, web.PageDashboard, gin.H{"Decks": decks})
}

// Flashcard shows the cards of the deck named by the id query parameter.
func (h *Page) Flashcard(c *gin.Context) {
	owner, ok := h.contextManager.GetOwnerFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/Get-Started")
		return
	}

	name := c.Query("id")
	cards, err := h.deckService.GetDeckCards(c.Request.Context(), owner, name)
	if err != nil {
		status, msg := statusFor(err)
		h.logger.Error("Page handler: flashcard failed",
			"owner", owner,
			"error", err.Error())
		c.HTML(status, web.PageFlashcard, gin.H{"Name": name, "Error": msg})
		return
	}

	c.HTML(http.StatusOK, web.PageFlashcard, gin.H{"Name": name, "Cards": cards})
}

// CreateForm renders an empty composer.
func (h *Page) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, web.PageCreate, createView{})
}

// Create handles both composer forms: action=generate drafts cards from
// text, action=save stores the edited cards and returns to the dashboard.
func (h *Page) Create(c *gin.Context) {
	owner, ok := h.contextManager.GetOwnerFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/Get-Started")
		return
	}

	switch c.PostForm("action") {
	case "generate":
		h.generate(c, owner)
	case "save":
		h.save(c, owner)
	default:
		c.HTML(http.StatusBadRequest, web.PageCreate, createView{Error: "unknown action"})
	}
}

func (h *Page) generate(c *gin.Context, owner string) {
	view := createView{Text: c.PostForm("text"), Name: c.PostForm("name")}

	cards, err := h.generationService.Generate(c.Request.Context(), owner, view.Text)
	if err != nil {
		status, msg := statusFor(err)
		view.Error = msg
		h.logger.Info("Page handler: generation failed", "owner", owner, "error", err.Error())
		c.HTML(status, web.PageCreate, view)
		return
	}

	view.Cards = cards
	view.CardLines = study.FormatCardLines(cards)
	c.HTML(http.StatusOK, web.PageCreate, view)
}

func (h *Page) save(c *gin.Context, owner string) {
	view := createView{Name: c.PostForm("name"), CardLines: c.PostForm("cards")}
	cards := study.ParseCardLines(view.CardLines)

	err := h.deckService.SaveDeck(c.Request.Context(), model.SaveDeckParams{
		Owner: owner,
		Name:  view.Name,
		Cards: cards,
	})
	if err != nil {
		status, msg := statusFor(err)
		view.Error = msg
		view.Cards = cards
		c.HTML(status, web.PageCreate, view)
		return
	}

	c.Redirect(http.StatusSeeOther, "/Dashboard")
}

// GetStarted lists the subscription plans.
func (h *Page) GetStarted(c *gin.Context) {
	c.HTML(http.StatusOK, web.PageGetStarted, gin.H{"Plans": model.Plans})
}

// Result confirms or rejects the payment of the session_id query parameter.
func (h *Page) Result(c *gin.Context) {
	id := c.Query("session_id")

	session, err := h.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		status, msg := statusFor(err)
		h.logger.Error("Page handler: result failed",
			"session_id", id,
			"error", err.Error())
		c.HTML(status, web.PageResult, gin.H{"Error": msg})
		return
	}

	c.HTML(http.StatusOK, web.PageResult, gin.H{
		"SessionID": session.ID,
		"Paid":      session.Paid(),
	})
}
