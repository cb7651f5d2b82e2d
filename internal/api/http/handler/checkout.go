package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
)

type CheckoutService interface {
	CreateSession(ctx context.Context, owner string, planID model.PlanID) (model.CheckoutSession, error)
	GetSession(ctx context.Context, id string) (model.CheckoutSession, error)
}

// Checkout handles the hosted checkout endpoints.
type Checkout struct {
	checkoutService CheckoutService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

func NewCheckout(checkoutService CheckoutService, contextManager model.ContextManager, logger *logger.Logger) *Checkout {
	return &Checkout{
		checkoutService: checkoutService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type createCheckoutRequest struct {
	Plan model.PlanID `json:"plan"`
}

type checkoutSessionResponse struct {
	ID            string              `json:"id"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	Paid          bool                `json:"paid"`
}

// CreateSession opens a checkout and returns its id and hosted URL. An empty
// body selects the default plan.
func (h *Checkout) CreateSession(c *gin.Context) {
	owner, ok := requireOwner(c, h.contextManager)
	if !ok {
		return
	}

	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		handleError(c, model.NewErrValidation("invalid checkout payload"))
		return
	}

	session, err := h.checkoutService.CreateSession(c.Request.Context(), owner, req.Plan)
	if err != nil {
		h.logger.Error("Checkout handler: create session failed",
			"owner", owner,
			"plan", req.Plan,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetSession reports the payment status of the session_id query parameter.
func (h *Checkout) GetSession(c *gin.Context) {
	id := c.Query("session_id")

	session, err := h.checkoutService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Checkout handler: get session failed",
			"session_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, checkoutSessionResponse{
		ID:            session.ID,
		PaymentStatus: session.PaymentStatus,
		Paid:          session.Paid(),
	})
}
