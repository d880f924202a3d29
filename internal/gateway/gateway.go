package gateway

import "context"

// Intent is the gateway-neutral view of a created payment intent.
type Intent struct {
	ID           string
	ClientSecret string
}

// WebhookEvent is a verified, decoded gateway notification.
type WebhookEvent struct {
	Type        string
	IntentID    string
	AmountMinor int64
	Metadata    map[string]string
}

// Event types the reconciliation service reacts to.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
	EventPaymentCanceled  = "payment_intent.canceled"
)

// PaymentGateway abstracts the card-payment provider. Amounts cross this
// boundary in minor currency units.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*Intent, error)
	UpdateIntentMetadata(ctx context.Context, intentID string, metadata map[string]string) error
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (string, error)
	// VerifyWebhook checks the payload signature and decodes the event.
	// A signature mismatch returns domain.ErrSignature.
	VerifyWebhook(payload []byte, sigHeader, secret string) (*WebhookEvent, error)
}
