package model

import "context"

// PlanID identifies a subscription plan.
type PlanID string

const (
	PlanFree     PlanID = "free"
	PlanStandard PlanID = "standard"
	PlanPremium  PlanID = "premium"
)

// Plan describes a subscription tier shown on the pricing page.
type Plan struct {
	ID         PlanID
	Name       string
	PriceCents int64
}

// Plans lists the tiers in display order.
var Plans = []Plan{
	{ID: PlanFree, Name: "Free", PriceCents: 0},
	{ID: PlanStandard, Name: "Standard", PriceCents: 500},
	{ID: PlanPremium, Name: "Premium", PriceCents: 1000},
}

// LookupPlan returns the plan with the given id.
func LookupPlan(id PlanID) (Plan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// PaymentStatus is the provider's payment state of a checkout session.
type PaymentStatus string

const (
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusUnpaid            PaymentStatus = "unpaid"
	PaymentStatusNoPaymentRequired PaymentStatus = "no_payment_required"
)

// CheckoutSession is a hosted checkout created by the payment provider.
type CheckoutSession struct {
	ID            string        `json:"id"`
	URL           string        `json:"url,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// Paid reports whether the session has been paid.
func (s CheckoutSession) Paid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// CheckoutParams contains parameters to open a checkout session.
type CheckoutParams struct {
	Plan       Plan
	Owner      string
	SuccessURL string
	CancelURL  string
}

// PaymentProvider creates and reads hosted checkout sessions.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (CheckoutSession, error)
}
