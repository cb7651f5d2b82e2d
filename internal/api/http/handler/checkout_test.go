package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/quizzme-server/internal/mocks"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/testutil"
)

func TestCheckout_CreateSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.CheckoutService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "explicit plan",
			body: `{"plan":"standard"}`,
			setup: func(svc *mocks.CheckoutService) {
				svc.On("CreateSession", mock.Anything, "user_1", model.PlanStandard).
					Return(model.CheckoutSession{ID: "cs_1", URL: "https://checkout.test/cs_1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"cs_1","url":"https://checkout.test/cs_1","payment_status":""}`,
		},
		{
			name: "empty body uses default plan",
			body: "",
			setup: func(svc *mocks.CheckoutService) {
				svc.On("CreateSession", mock.Anything, "user_1", model.PlanID("")).
					Return(model.CheckoutSession{ID: "cs_2", URL: "https://checkout.test/cs_2"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"cs_2","url":"https://checkout.test/cs_2","payment_status":""}`,
		},
		{
			name: "unknown plan",
			body: `{"plan":"gold"}`,
			setup: func(svc *mocks.CheckoutService) {
				svc.On("CreateSession", mock.Anything, "user_1", model.PlanID("gold")).
					Return(model.CheckoutSession{}, model.NewErrValidation("unknown plan"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"unknown plan"}`,
		},
		{
			name: "provider down",
			body: `{"plan":"premium"}`,
			setup: func(svc *mocks.CheckoutService) {
				svc.On("CreateSession", mock.Anything, "user_1", model.PlanPremium).
					Return(model.CheckoutSession{}, model.NewErrCollaboratorUnavailable("payment provider", errors.New("502")))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"payment provider is unavailable"}`,
		},
		{
			name:       "malformed payload",
			body:       `{"plan":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid checkout payload"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewCheckoutService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewCheckout(svc, signedIn(t, "user_1"), testutil.MakeNoopLogger())

			w := serve(http.MethodPost, "/api/checkout", tt.body, h.CreateSession)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestCheckout_GetSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		setup      func(svc *mocks.CheckoutService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "paid",
			target: "/api/checkout?session_id=cs_1",
			setup: func(svc *mocks.CheckoutService) {
				svc.On("GetSession", mock.Anything, "cs_1").
					Return(model.CheckoutSession{ID: "cs_1", PaymentStatus: model.PaymentStatusPaid}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"cs_1","payment_status":"paid","paid":true}`,
		},
		{
			name:   "unpaid",
			target: "/api/checkout?session_id=cs_2",
			setup: func(svc *mocks.CheckoutService) {
				svc.On("GetSession", mock.Anything, "cs_2").
					Return(model.CheckoutSession{ID: "cs_2", PaymentStatus: model.PaymentStatusUnpaid}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"cs_2","payment_status":"unpaid","paid":false}`,
		},
		{
			name:   "unknown session",
			target: "/api/checkout?session_id=cs_x",
			setup: func(svc *mocks.CheckoutService) {
				svc.On("GetSession", mock.Anything, "cs_x").
					Return(model.CheckoutSession{}, model.NewErrNotFound("checkout session not found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"checkout session not found"}`,
		},
		{
			name:   "missing id",
			target: "/api/checkout",
			setup: func(svc *mocks.CheckoutService) {
				svc.On("GetSession", mock.Anything, "").
					Return(model.CheckoutSession{}, model.NewErrValidation("session id is required"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"session id is required"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewCheckoutService(t)
			tt.setup(svc)
			h := NewCheckout(svc, mocks.NewContextManager(t), testutil.MakeNoopLogger())

			w := serve(http.MethodGet, tt.target, "", h.GetSession)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
