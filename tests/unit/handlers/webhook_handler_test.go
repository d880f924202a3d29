package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "courtside-backend/internal/api/http"
	"courtside-backend/internal/domain"
)

func TestPaymentHandler_HandleWebhook(t *testing.T) {
	t.Run("AcknowledgesProcessedEvent", func(t *testing.T) {
		svc := new(MockPaymentService)
		handler := httpapi.NewPaymentHandler(svc)

		svc.On("HandleWebhookEvent", mock.Anything, []byte(`{"type":"payment_intent.succeeded"}`), "t=1,v1=sig").
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/payment/webhook", strings.NewReader(`{"type":"payment_intent.succeeded"}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=sig")
		rec := httptest.NewRecorder()

		handler.HandleWebhook(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "received")
		svc.AssertExpectations(t)
	})

	t.Run("RejectsBadSignature", func(t *testing.T) {
		svc := new(MockPaymentService)
		handler := httpapi.NewPaymentHandler(svc)

		svc.On("HandleWebhookEvent", mock.Anything, mock.Anything, "bad").
			Return(domain.ErrSignature)

		req := httptest.NewRequest(http.MethodPost, "/api/payment/webhook", strings.NewReader("{}"))
		req.Header.Set("Stripe-Signature", "bad")
		rec := httptest.NewRecorder()

		handler.HandleWebhook(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandler_GetPaymentStatus(t *testing.T) {
	t.Run("RequiresOrderID", func(t *testing.T) {
		svc := new(MockPaymentService)
		handler := httpapi.NewPaymentHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/status", nil)
		rec := httptest.NewRecorder()

		handler.GetPaymentStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetPaymentStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownOrderIs404", func(t *testing.T) {
		svc := new(MockPaymentService)
		handler := httpapi.NewPaymentHandler(svc)

		svc.On("GetPaymentStatus", mock.Anything, int32(0), "missing").Return(nil, domain.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/status?order_id=missing", nil)
		rec := httptest.NewRecorder()

		handler.GetPaymentStatus(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
