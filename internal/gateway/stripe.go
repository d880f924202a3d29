package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"courtside-backend/internal/domain"
)

type stripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) PaymentGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeGateway{api: api}
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, &domain.GatewayError{Op: "create intent", Err: err}
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *stripeGateway) UpdateIntentMetadata(ctx context.Context, intentID string, metadata map[string]string) error {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	if _, err := g.api.PaymentIntents.Update(intentID, params); err != nil {
		return &domain.GatewayError{Op: "update intent metadata", Err: err}
	}
	return nil
}

func (g *stripeGateway) RetrieveCheckoutSession(ctx context.Context, sessionID string) (string, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return "", &domain.GatewayError{Op: "retrieve checkout session", Err: err}
	}
	return string(s.Status), nil
}

func (g *stripeGateway) VerifyWebhook(payload []byte, sigHeader, secret string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSignature, err)
	}

	var object struct {
		ID       string            `json:"id"`
		Amount   int64             `json:"amount"`
		Metadata map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
		return nil, fmt.Errorf("decode event object: %w", err)
	}

	return &WebhookEvent{
		Type:        string(event.Type),
		IntentID:    object.ID,
		AmountMinor: object.Amount,
		Metadata:    object.Metadata,
	}, nil
}
