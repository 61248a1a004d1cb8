package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"fitweek/fitness-tracker/internal/domain"
	"fitweek/fitness-tracker/internal/payments"
	"fitweek/fitness-tracker/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrPaymentUpdateFailed flags a confirmed payment whose record update
// failed. It is surfaced, never retried automatically: silently losing a
// confirmed payment is worse than a visible error the operator can reconcile.
var ErrPaymentUpdateFailed = errors.New("payment confirmed but record update failed")

// CheckoutResult is returned from session creation.
type CheckoutResult struct {
	SessionID   string `json:"sessionId"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
}

// PaymentService drives the premium-content payment round trip.
//
// State machine per (postID, userID): none -> pending -> {succeeded, expired},
// terminal once succeeded or expired. Both VerifySession and the webhook
// perform the pending transition; racing is safe because the repository
// matches on status=pending, so the second arrival is a no-op.
type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, amount float64, postID, userID, userEmail string) (*CheckoutResult, error)
	VerifySession(ctx context.Context, sessionID, postID, userID string) (domain.PaymentStatus, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	postRepo    repository.PostRepository
	provider    payments.CheckoutProvider
	currency    string
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	postRepo repository.PostRepository,
	provider payments.CheckoutProvider,
	currency string,
) PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &paymentService{
		paymentRepo: paymentRepo,
		postRepo:    postRepo,
		provider:    provider,
		currency:    currency,
	}
}

// CreateCheckoutSession opens a hosted checkout session for a premium post
// and persists a pending payment record before the caller is redirected.
func (s *paymentService) CreateCheckoutSession(ctx context.Context, amount float64, postID, userID, userEmail string) (*CheckoutResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount is required", ErrValidation)
	}
	if postID == "" {
		return nil, fmt.Errorf("%w: postId is required", ErrValidation)
	}
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	productName := "Premium content"
	if post, err := s.postRepo.GetByPostID(ctx, postID); err == nil {
		productName = post.Title
	}

	amountCents := int64(math.Round(amount * 100))
	session, err := s.provider.CreateSession(ctx, payments.CreateSessionParams{
		AmountCents: amountCents,
		Currency:    s.currency,
		ProductName: productName,
		PostID:      postID,
		UserID:      userID,
		UserEmail:   userEmail,
	})
	if err != nil {
		logrus.WithError(err).WithField("postId", postID).Error("checkout session creation failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	payment := &domain.PremiumPayment{
		PostID:      postID,
		UserID:      uid,
		SessionID:   session.ID,
		AmountCents: amountCents,
		Currency:    s.currency,
	}
	if _, err := s.paymentRepo.CreatePending(ctx, payment); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"postId":    postID,
			"sessionId": session.ID,
		}).Error("failed to persist pending payment")
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &CheckoutResult{SessionID: session.ID, CheckoutURL: session.URL}, nil
}

// VerifySession reconciles a checkout session's terminal status against the
// persisted pending record. Idempotent: a second call after the transition
// finds no pending row and returns the stored status without re-updating.
func (s *paymentService) VerifySession(ctx context.Context, sessionID, postID, userID string) (domain.PaymentStatus, error) {
	if sessionID == "" || postID == "" {
		return "", fmt.Errorf("%w: sessionId and postId are required", ErrValidation)
	}
	uid, err := parseUserID(userID)
	if err != nil {
		return "", fmt.Errorf("%w: userId is required", ErrValidation)
	}

	session, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		logrus.WithError(err).WithField("sessionId", sessionID).Error("failed to fetch checkout session")
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// The session's metadata names the (post, user) it was opened for. A
	// session paid for one post must not settle another post's pending
	// record, so a mismatch is rejected before any transition.
	if session.PostID != postID || session.UserID != userID {
		logrus.WithFields(logrus.Fields{
			"sessionId":     sessionID,
			"postId":        postID,
			"sessionPostId": session.PostID,
		}).Warn("checkout session does not match the claimed post and user")
		return "", fmt.Errorf("%w: session does not belong to this post and user", ErrValidation)
	}

	if session.PaymentStatus != payments.SessionPaid {
		// Not paid (yet). Report the processor's view; the webhook owns the
		// expired transition.
		if session.Status == payments.SessionExpired {
			return domain.PaymentExpired, nil
		}
		return domain.PaymentPending, nil
	}

	err = s.paymentRepo.MarkSucceeded(ctx, postID, uid, session.PaymentID)
	if err == nil {
		return domain.PaymentSucceeded, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		// No pending record: the webhook (or an earlier verify) already
		// finished the transition. Report the stored status.
		existing, getErr := s.paymentRepo.GetByPostAndUser(ctx, postID, uid)
		if getErr != nil {
			if errors.Is(getErr, repository.ErrNotFound) {
				// No record at all, e.g. the pending insert was lost. The
				// session metadata already matched, so the processor's word
				// on this (post, user) stands.
				logrus.WithField("postId", postID).Warn("paid session has no payment record")
				return domain.PaymentSucceeded, nil
			}
			return "", fmt.Errorf("%w: %v", ErrPersistence, getErr)
		}
		return existing.Status, nil
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"postId":    postID,
		"sessionId": sessionID,
	}).Error("confirmed payment could not be recorded")
	return "", fmt.Errorf("%w: %v", ErrPaymentUpdateFailed, err)
}

// HandleWebhook applies processor events to the payment records. Unhandled
// event types are acknowledged and dropped.
func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.provider.ParseWebhookEvent(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	switch event.Type {
	case payments.EventCheckoutCompleted:
		return s.applyTransition(ctx, event, domain.PaymentSucceeded)
	case payments.EventCheckoutExpired:
		return s.applyTransition(ctx, event, domain.PaymentExpired)
	default:
		return nil
	}
}

func (s *paymentService) applyTransition(ctx context.Context, event *payments.WebhookEvent, target domain.PaymentStatus) error {
	uid, err := primitive.ObjectIDFromHex(event.Session.UserID)
	if err != nil {
		return fmt.Errorf("%w: event session has invalid user metadata", ErrValidation)
	}

	switch target {
	case domain.PaymentSucceeded:
		err = s.paymentRepo.MarkSucceeded(ctx, event.Session.PostID, uid, event.Session.PaymentID)
	case domain.PaymentExpired:
		err = s.paymentRepo.MarkExpired(ctx, event.Session.PostID, uid)
	}
	if errors.Is(err, repository.ErrNotFound) {
		// The verify path won the race; nothing left to do.
		logrus.WithFields(logrus.Fields{
			"postId": event.Session.PostID,
			"event":  event.Type,
		}).Debug("webhook transition already applied")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentUpdateFailed, err)
	}
	return nil
}
