package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"fitweek/fitness-tracker/internal/config"

	"github.com/sirupsen/logrus"
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Metadata keys carried on every checkout session.
const (
	metadataPostID = "postId"
	metadataUserID = "userId"
)

// stripeProvider implements the CheckoutProvider interface on Stripe hosted
// checkout.
type stripeProvider struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

// NewStripeProvider creates a new Stripe checkout provider.
func NewStripeProvider(cfg config.StripeConfig) (CheckoutProvider, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not configured")
	}
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	logrus.WithField("successUrl", cfg.SuccessURL).Info("stripe checkout provider initialized")

	return &stripeProvider{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
	}, nil
}

// CreateSession opens a hosted checkout session with a single line item.
func (p *stripeProvider) CreateSession(ctx context.Context, params CreateSessionParams) (*CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(params.Currency),
					UnitAmount: stripe.Int64(params.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
	}
	if params.UserEmail != "" {
		sessionParams.CustomerEmail = stripe.String(params.UserEmail)
	}
	sessionParams.Params.Context = ctx
	sessionParams.AddMetadata(metadataPostID, params.PostID)
	sessionParams.AddMetadata(metadataUserID, params.UserID)

	s, err := p.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return mapSession(s), nil
}

// GetSession fetches a session's current state.
func (p *stripeProvider) GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	getParams := &stripe.CheckoutSessionParams{}
	getParams.Params.Context = ctx

	s, err := p.api.CheckoutSessions.Get(sessionID, getParams)
	if err != nil {
		return nil, fmt.Errorf("get checkout session %s: %w", sessionID, err)
	}
	return mapSession(s), nil
}

// ParseWebhookEvent verifies the Stripe signature header and decodes the
// checkout session from the event payload.
func (p *stripeProvider) ParseWebhookEvent(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}

	parsed := &WebhookEvent{Type: string(event.Type)}
	switch parsed.Type {
	case EventCheckoutCompleted, EventCheckoutExpired:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("decode checkout session from event: %w", err)
		}
		parsed.Session = *mapSession(&s)
	}
	return parsed, nil
}

func mapSession(s *stripe.CheckoutSession) *CheckoutSession {
	mapped := &CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		Status:        string(s.Status),
		PostID:        s.Metadata[metadataPostID],
		UserID:        s.Metadata[metadataUserID],
	}
	if s.PaymentIntent != nil {
		mapped.PaymentID = s.PaymentIntent.ID
	}
	return mapped
}
