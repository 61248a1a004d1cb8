package mongo

import (
	"context"
	"errors"
	"time"

	"fitweek/fitness-tracker/internal/domain"
	"fitweek/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const paymentCollectionName = "premium_payments"

// mongoPaymentRepository implements repository.PaymentRepository
type mongoPaymentRepository struct {
	collection *mongo.Collection
}

// NewMongoPaymentRepository creates a new Payment repository.
func NewMongoPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &mongoPaymentRepository{
		collection: db.Collection(paymentCollectionName),
	}
}

// CreatePending inserts a new payment record in pending state.
func (r *mongoPaymentRepository) CreatePending(ctx context.Context, payment *domain.PremiumPayment) (primitive.ObjectID, error) {
	if payment.PostID == "" || payment.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("payment requires postId and userId")
	}
	payment.ID = primitive.NewObjectID()
	payment.Status = domain.PaymentPending
	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted payment ID")
	}
	return insertedID, nil
}

// GetByPostAndUser retrieves the most recent payment for (postID, userID).
func (r *mongoPaymentRepository) GetByPostAndUser(ctx context.Context, postID string, userID primitive.ObjectID) (*domain.PremiumPayment, error) {
	filter := bson.M{"postId": postID, "userId": userID}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var payment domain.PremiumPayment
	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// MarkSucceeded transitions the pending record for (postID, userID) to
// succeeded and stamps the processor payment reference. The filter matches
// on status=pending, so a concurrent transition (verify racing the webhook)
// makes exactly one of the two calls succeed; the loser gets ErrNotFound.
func (r *mongoPaymentRepository) MarkSucceeded(ctx context.Context, postID string, userID primitive.ObjectID, paymentID string) error {
	return r.transitionPending(ctx, postID, userID, bson.M{
		"status":    domain.PaymentSucceeded,
		"paymentId": paymentID,
		"updatedAt": time.Now().UTC(),
	})
}

// MarkExpired transitions the pending record for (postID, userID) to expired.
func (r *mongoPaymentRepository) MarkExpired(ctx context.Context, postID string, userID primitive.ObjectID) error {
	return r.transitionPending(ctx, postID, userID, bson.M{
		"status":    domain.PaymentExpired,
		"updatedAt": time.Now().UTC(),
	})
}

func (r *mongoPaymentRepository) transitionPending(ctx context.Context, postID string, userID primitive.ObjectID, set bson.M) error {
	filter := bson.M{
		"postId": postID,
		"userId": userID,
		"status": domain.PaymentPending,
	}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePaymentIndexes creates necessary indexes. Call during startup.
func EnsurePaymentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "postId", Value: 1},
				{Key: "userId", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
