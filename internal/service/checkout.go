package service

import (
	"context"
	"strings"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/observability"
)

const (
	paymentProviderName = "payment provider"

	// CheckoutSessionPlaceholder is replaced by the provider with the session id.
	CheckoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"
)

// Checkout opens hosted checkout sessions for paid plans and reads their
// payment status.
type Checkout struct {
	provider  model.PaymentProvider
	publicURL string
	logger    *logger.Logger
}

func NewCheckout(provider model.PaymentProvider, publicURL string, logger *logger.Logger) *Checkout {
	return &Checkout{
		provider:  provider,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// CreateSession opens a checkout for planID. An empty planID selects the
// premium plan.
func (s *Checkout) CreateSession(ctx context.Context, owner string, planID model.PlanID) (model.CheckoutSession, error) {
	if planID == "" {
		planID = model.PlanPremium
	}

	plan, ok := model.LookupPlan(planID)
	if !ok {
		return model.CheckoutSession{}, model.NewErrValidation("unknown plan " + string(planID))
	}
	if plan.PriceCents == 0 {
		return model.CheckoutSession{}, model.NewErrValidation("the free plan does not need a checkout")
	}

	params := model.CheckoutParams{
		Plan:       plan,
		Owner:      owner,
		SuccessURL: s.publicURL + "/result?session_id=" + CheckoutSessionPlaceholder,
		CancelURL:  s.publicURL + "/Get-Started",
	}

	session, err := s.provider.CreateCheckoutSession(ctx, params)
	if err != nil {
		observability.CheckoutSessions.WithLabelValues(string(plan.ID), "error").Inc()
		s.logger.Error("Checkout service: failed to create checkout session",
			"owner", owner,
			"plan", plan.ID,
			"error", err.Error())
		return model.CheckoutSession{}, model.NewErrCollaboratorUnavailable(paymentProviderName, err)
	}

	observability.CheckoutSessions.WithLabelValues(string(plan.ID), "ok").Inc()
	s.logger.Info("Checkout service: checkout session created",
		"owner", owner,
		"plan", plan.ID,
		"session_id", session.ID)

	return session, nil
}

// GetSession returns the checkout session with its payment status.
func (s *Checkout) GetSession(ctx context.Context, id string) (model.CheckoutSession, error) {
	if strings.TrimSpace(id) == "" {
		return model.CheckoutSession{}, model.NewErrValidation("session id is required")
	}

	session, err := s.provider.GetCheckoutSession(ctx, id)
	if err != nil {
		s.logger.Error("Checkout service: failed to get checkout session",
			"session_id", id,
			"error", err.Error())
		if model.KindOf(err) == model.KindNotFound {
			return model.CheckoutSession{}, err
		}
		return model.CheckoutSession{}, model.NewErrCollaboratorUnavailable(paymentProviderName, err)
	}

	return session, nil
}
