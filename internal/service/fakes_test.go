package service_test

import (
	"context"
	"fmt"
	"time"

	"fitweek/fitness-tracker/internal/domain"
	"fitweek/fitness-tracker/internal/payments"
	"fitweek/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- workout log repository fake ---

type logSaveCall struct {
	log     domain.WorkoutLog
	entries []domain.WorkoutLogEntry
}

type fakeLogRepo struct {
	entries   map[string][]domain.WorkoutLogEntry // keyed userHex|dateKey
	saveCalls []logSaveCall
	saveErr   error
	getErr    error
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{entries: make(map[string][]domain.WorkoutLogEntry)}
}

func logKey(userID primitive.ObjectID, dateKey string) string {
	return userID.Hex() + "|" + dateKey
}

func (f *fakeLogRepo) GetEntries(_ context.Context, userID primitive.ObjectID, dateKey string) ([]domain.WorkoutLogEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	entries, ok := f.entries[logKey(userID, dateKey)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return entries, nil
}

func (f *fakeLogRepo) Save(_ context.Context, log *domain.WorkoutLog, entries []domain.WorkoutLogEntry) (*domain.WorkoutLog, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saveCalls = append(f.saveCalls, logSaveCall{log: *log, entries: entries})
	f.entries[logKey(log.UserID, log.DateKey)] = entries
	saved := *log
	saved.ID = primitive.NewObjectID()
	saved.CreatedAt = time.Now().UTC()
	saved.UpdatedAt = saved.CreatedAt
	return &saved, nil
}

// --- payment repository fake ---

type fakePaymentRepo struct {
	payments      map[string]*domain.PremiumPayment // keyed postID|userHex
	transitionErr error
	createErr     error
	getErr        error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*domain.PremiumPayment)}
}

func paymentKey(postID string, userID primitive.ObjectID) string {
	return postID + "|" + userID.Hex()
}

func (f *fakePaymentRepo) CreatePending(_ context.Context, payment *domain.PremiumPayment) (primitive.ObjectID, error) {
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	payment.ID = primitive.NewObjectID()
	payment.Status = domain.PaymentPending
	f.payments[paymentKey(payment.PostID, payment.UserID)] = payment
	return payment.ID, nil
}

func (f *fakePaymentRepo) GetByPostAndUser(_ context.Context, postID string, userID primitive.ObjectID) (*domain.PremiumPayment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.payments[paymentKey(postID, userID)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePaymentRepo) MarkSucceeded(_ context.Context, postID string, userID primitive.ObjectID, paymentID string) error {
	if f.transitionErr != nil {
		return f.transitionErr
	}
	p, ok := f.payments[paymentKey(postID, userID)]
	if !ok || p.Status != domain.PaymentPending {
		return repository.ErrNotFound
	}
	p.Status = domain.PaymentSucceeded
	p.PaymentID = paymentID
	return nil
}

func (f *fakePaymentRepo) MarkExpired(_ context.Context, postID string, userID primitive.ObjectID) error {
	if f.transitionErr != nil {
		return f.transitionErr
	}
	p, ok := f.payments[paymentKey(postID, userID)]
	if !ok || p.Status != domain.PaymentPending {
		return repository.ErrNotFound
	}
	p.Status = domain.PaymentExpired
	return nil
}

// --- post repository fake ---

type fakePostRepo struct {
	posts map[string]*domain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*domain.Post)}
}

func (f *fakePostRepo) Create(_ context.Context, post *domain.Post) (primitive.ObjectID, error) {
	if _, ok := f.posts[post.PostID]; ok {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	post.ID = primitive.NewObjectID()
	f.posts[post.PostID] = post
	return post.ID, nil
}

func (f *fakePostRepo) GetByPostID(_ context.Context, postID string) (*domain.Post, error) {
	p, ok := f.posts[postID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePostRepo) SetMedia(_ context.Context, postID string, objectKey, contentType string) error {
	p, ok := f.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	p.MediaObjectKey = objectKey
	p.MediaContentType = contentType
	return nil
}

// --- checkout provider fake ---

type fakeProvider struct {
	createdSessions []payments.CreateSessionParams
	sessions        map[string]*payments.CheckoutSession
	createErr       error
	getErr          error
	webhookEvent    *payments.WebhookEvent
	webhookErr      error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{sessions: make(map[string]*payments.CheckoutSession)}
}

func (f *fakeProvider) CreateSession(_ context.Context, params payments.CreateSessionParams) (*payments.CheckoutSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdSessions = append(f.createdSessions, params)
	s := &payments.CheckoutSession{
		ID:            fmt.Sprintf("cs_test_%d", len(f.createdSessions)),
		URL:           "https://checkout.example.com/session",
		PaymentStatus: payments.SessionUnpaid,
		Status:        "open",
		PostID:        params.PostID,
		UserID:        params.UserID,
	}
	f.sessions[s.ID] = s
	return s, nil
}

func (f *fakeProvider) GetSession(_ context.Context, sessionID string) (*payments.CheckoutSession, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}
	return s, nil
}

func (f *fakeProvider) ParseWebhookEvent(_ []byte, _ string) (*payments.WebhookEvent, error) {
	if f.webhookErr != nil {
		return nil, f.webhookErr
	}
	return f.webhookEvent, nil
}

// --- media storage fake ---

type fakeMedia struct {
	uploadErr   error
	downloadErr error
}

func (f *fakeMedia) GeneratePresignedUploadURL(_ context.Context, objectKey string, _ string, _ time.Duration) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://storage.example.com/put/" + objectKey, nil
}

func (f *fakeMedia) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	if f.downloadErr != nil {
		return "", f.downloadErr
	}
	return "https://storage.example.com/get/" + objectKey, nil
}
