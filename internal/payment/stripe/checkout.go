// Package stripe opens hosted Stripe checkout sessions for paid plans.
package stripe

import (
	"context"
	"errors"
	"fmt"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/dtroode/quizzme-server/internal/model"
)

// checkoutAPI is the part of the Stripe checkout session client we use.
type checkoutAPI interface {
	New(params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
	Get(id string, params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
}

var _ model.PaymentProvider = (*Provider)(nil)

type Provider struct {
	api checkoutAPI
}

func NewProvider(secretKey string) *Provider {
	sc := client.New(secretKey, nil)
	return NewProviderWithAPI(sc.CheckoutSessions)
}

func NewProviderWithAPI(api checkoutAPI) *Provider {
	return &Provider{api: api}
}

// CreateCheckoutSession opens a monthly subscription checkout for the plan.
func (p *Provider) CreateCheckoutSession(ctx context.Context, params model.CheckoutParams) (model.CheckoutSession, error) {
	sp := &stripego.CheckoutSessionParams{
		Mode: stripego.String(string(stripego.CheckoutSessionModeSubscription)),
		LineItems: []*stripego.CheckoutSessionLineItemParams{{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency: stripego.String(string(stripego.CurrencyUSD)),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(params.Plan.Name + " subscription"),
				},
				UnitAmount: stripego.Int64(params.Plan.PriceCents),
				Recurring: &stripego.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval:      stripego.String(string(stripego.PriceRecurringIntervalMonth)),
					IntervalCount: stripego.Int64(1),
				},
			},
			Quantity: stripego.Int64(1),
		}},
		SuccessURL:        stripego.String(params.SuccessURL),
		CancelURL:         stripego.String(params.CancelURL),
		ClientReferenceID: stripego.String(params.Owner),
	}
	sp.Context = ctx
	sp.AddMetadata("plan", string(params.Plan.ID))

	s, err := p.api.New(sp)
	if err != nil {
		return model.CheckoutSession{}, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return toCheckoutSession(s), nil
}

func (p *Provider) GetCheckoutSession(ctx context.Context, id string) (model.CheckoutSession, error) {
	sp := &stripego.CheckoutSessionParams{}
	sp.Context = ctx

	s, err := p.api.Get(id, sp)
	if err != nil {
		var stripeErr *stripego.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripego.ErrorCodeResourceMissing {
			return model.CheckoutSession{}, model.NewErrNotFound("checkout session not found")
		}
		return model.CheckoutSession{}, fmt.Errorf("failed to get checkout session: %w", err)
	}

	return toCheckoutSession(s), nil
}

func toCheckoutSession(s *stripego.CheckoutSession) model.CheckoutSession {
	return model.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: model.PaymentStatus(s.PaymentStatus),
	}
}
