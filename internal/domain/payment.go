package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus is the lifecycle state of a premium-content payment.
// Transitions: pending -> succeeded, pending -> expired. Both end states are
// terminal; only a pending record may ever be transitioned.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentExpired   PaymentStatus = "expired"
)

// PremiumPayment tracks one member's purchase of one premium post.
// Created in pending state before the member is redirected to the hosted
// checkout; moved to a terminal state by the verify call or the webhook,
// whichever arrives first. At most one pending record per (postId, userId).
type PremiumPayment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID      string             `bson:"postId" json:"postId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Status      PaymentStatus      `bson:"status" json:"status"`
	SessionID   string             `bson:"sessionId" json:"sessionId"`                     // checkout session at the processor
	PaymentID   string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"` // processor payment reference, stamped on success
	AmountCents int64              `bson:"amountCents" json:"amountCents"`
	Currency    string             `bson:"currency" json:"currency"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsTerminal reports whether the payment can no longer change state.
func (p *PremiumPayment) IsTerminal() bool {
	return p.Status == PaymentSucceeded || p.Status == PaymentExpired
}
