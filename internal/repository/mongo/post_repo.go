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

const postCollectionName = "posts"

// mongoPostRepository implements repository.PostRepository
type mongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new Post repository.
func NewMongoPostRepository(db *mongo.Database) repository.PostRepository {
	return &mongoPostRepository{
		collection: db.Collection(postCollectionName),
	}
}

// Create inserts a new premium post.
func (r *mongoPostRepository) Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error) {
	if post.PostID == "" || post.Title == "" {
		return primitive.NilObjectID, errors.New("post requires postId and title")
	}
	post.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted post ID")
	}
	return insertedID, nil
}

// GetByPostID retrieves a post by its public identifier.
func (r *mongoPostRepository) GetByPostID(ctx context.Context, postID string) (*domain.Post, error) {
	var post domain.Post
	err := r.collection.FindOne(ctx, bson.M{"postId": postID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// SetMedia records the storage object key for a post's premium media.
func (r *mongoPostRepository) SetMedia(ctx context.Context, postID string, objectKey, contentType string) error {
	update := bson.M{
		"$set": bson.M{
			"mediaObjectKey":   objectKey,
			"mediaContentType": contentType,
			"updatedAt":        time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"postId": postID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePostIndexes creates necessary indexes. Call during startup.
func EnsurePostIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "postId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
