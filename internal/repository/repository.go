package repository

import (
	"context"

	"fitweek/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDuplicate    = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd domain.ProfileUpdate) (*domain.User, error)
}

// WorkoutLogRepository persists per-day workout logs. A log is a parent row
// keyed (userId, dateKey) plus one entry row per exercise.
type WorkoutLogRepository interface {
	// GetEntries fetches all exercise entries for that member/day.
	// Returns ErrNotFound when the day has no parent log row.
	GetEntries(ctx context.Context, userID primitive.ObjectID, dateKey string) ([]domain.WorkoutLogEntry, error)

	// Save upserts the parent log row first and the entry rows after.
	// If the parent upsert fails no entry may be written. The parent's
	// CompletedAt is taken from log as given (callers compute it from the
	// batch). Last write wins for both the parent and each entry.
	Save(ctx context.Context, log *domain.WorkoutLog, entries []domain.WorkoutLogEntry) (*domain.WorkoutLog, error)
}

// PaymentRepository persists premium-content payments.
type PaymentRepository interface {
	CreatePending(ctx context.Context, payment *domain.PremiumPayment) (primitive.ObjectID, error)
	GetByPostAndUser(ctx context.Context, postID string, userID primitive.ObjectID) (*domain.PremiumPayment, error)

	// MarkSucceeded / MarkExpired transition the record for (postID, userID)
	// whose status is exactly pending. ErrNotFound means no pending record
	// matched — either none ever existed or another path already finished
	// the transition; callers decide which by reading the record back.
	MarkSucceeded(ctx context.Context, postID string, userID primitive.ObjectID, paymentID string) error
	MarkExpired(ctx context.Context, postID string, userID primitive.ObjectID) error
}

// PostRepository stores premium post metadata.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error)
	GetByPostID(ctx context.Context, postID string) (*domain.Post, error)
	SetMedia(ctx context.Context, postID string, objectKey, contentType string) error
}
