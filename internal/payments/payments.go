package payments

import "context"

// Session payment statuses as reported by the processor. Kept as plain
// strings so non-Stripe values pass through untouched.
const (
	SessionPaid    = "paid"
	SessionUnpaid  = "unpaid"
	SessionExpired = "expired"
)

// Webhook event types of interest.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
)

// CheckoutSession is the provider-neutral view of a hosted checkout session.
type CheckoutSession struct {
	ID            string
	URL           string // hosted checkout page the member is redirected to
	PaymentStatus string // "paid", "unpaid", ...
	Status        string // "open", "complete", "expired"
	PaymentID     string // processor payment reference, set once paid
	PostID        string // from session metadata
	UserID        string // from session metadata
}

// CreateSessionParams carries everything needed to open a checkout session.
type CreateSessionParams struct {
	AmountCents int64
	Currency    string
	ProductName string
	PostID      string
	UserID      string
	UserEmail   string
}

// WebhookEvent is a parsed, signature-verified processor webhook event.
type WebhookEvent struct {
	Type    string
	Session CheckoutSession
}

// CheckoutProvider abstracts the hosted-checkout payment processor.
type CheckoutProvider interface {
	// CreateSession opens a hosted checkout session for a single fixed line
	// item, carrying (postID, userID) as session metadata.
	CreateSession(ctx context.Context, params CreateSessionParams) (*CheckoutSession, error)

	// GetSession fetches the current state of a session by ID.
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)

	// ParseWebhookEvent verifies the signature and decodes the payload.
	ParseWebhookEvent(payload []byte, signature string) (*WebhookEvent, error)
}
