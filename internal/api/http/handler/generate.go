package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
)

// MaxGenerateBody limits the study text accepted by the generate endpoint.
const MaxGenerateBody = 64 << 10

type GenerationService interface {
	Generate(ctx context.Context, owner, text string) ([]model.Card, error)
}

// Generate drafts flashcards from study text.
type Generate struct {
	generationService GenerationService
	contextManager    model.ContextManager
	logger            *logger.Logger
}

func NewGenerate(generationService GenerationService, contextManager model.ContextManager, logger *logger.Logger) *Generate {
	return &Generate{
		generationService: generationService,
		contextManager:    contextManager,
		logger:            logger,
	}
}

type generateRequest struct {
	Text string `json:"text"`
}

// Generate accepts the text as the raw body, or as {"text": ...} when sent
// as JSON, and responds with an array of {front, back}.
func (h *Generate) Generate(c *gin.Context) {
	owner, ok := requireOwner(c, h.contextManager)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxGenerateBody+1))
	if err != nil {
		handleError(c, model.NewErrValidation("failed to read request body"))
		return
	}
	if len(body) > MaxGenerateBody {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "text is too long"})
		return
	}

	text := string(body)
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req generateRequest
		if err := json.Unmarshal(body, &req); err == nil {
			text = req.Text
		}
	}

	cards, err := h.generationService.Generate(c.Request.Context(), owner, text)
	if err != nil {
		h.logger.Error("Generate handler: generation failed",
			"owner", owner,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}
