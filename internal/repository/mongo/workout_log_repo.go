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

const (
	workoutLogCollectionName      = "workout_logs"
	workoutLogEntryCollectionName = "workout_log_entries"
)

// mongoWorkoutLogRepository implements repository.WorkoutLogRepository
type mongoWorkoutLogRepository struct {
	logs    *mongo.Collection
	entries *mongo.Collection
}

// NewMongoWorkoutLogRepository creates a new WorkoutLog repository.
func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		logs:    db.Collection(workoutLogCollectionName),
		entries: db.Collection(workoutLogEntryCollectionName),
	}
}

// GetEntries retrieves all exercise entries for a member/day. The parent log
// row is checked first so a day that was never saved yields ErrNotFound
// rather than an empty slice.
func (r *mongoWorkoutLogRepository) GetEntries(ctx context.Context, userID primitive.ObjectID, dateKey string) ([]domain.WorkoutLogEntry, error) {
	parentFilter := bson.M{"userId": userID, "dateKey": dateKey}
	if err := r.logs.FindOne(ctx, parentFilter).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "exerciseId", Value: 1}})
	cursor, err := r.entries.Find(ctx, parentFilter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.WorkoutLogEntry
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Save upserts the parent log row, then each entry row. The parent write is
// staged first: if it fails, no entry is touched, so a failed save never
// leaves orphan entries behind. Entry upserts are last-write-wins on
// (userId, dateKey, exerciseId); no merge with previously stored entries.
func (r *mongoWorkoutLogRepository) Save(ctx context.Context, log *domain.WorkoutLog, entries []domain.WorkoutLogEntry) (*domain.WorkoutLog, error) {
	if log.UserID == primitive.NilObjectID || log.DateKey == "" {
		return nil, errors.New("workout log requires userId and dateKey")
	}
	now := time.Now().UTC()
	log.UpdatedAt = now

	parentFilter := bson.M{"userId": log.UserID, "dateKey": log.DateKey}
	parentUpdate := bson.M{
		"$set": bson.M{
			"workoutDayId": log.WorkoutDayID,
			"completedAt":  log.CompletedAt,
			"updatedAt":    log.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"userId":    log.UserID,
			"dateKey":   log.DateKey,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved domain.WorkoutLog
	if err := r.logs.FindOneAndUpdate(ctx, parentFilter, parentUpdate, opts).Decode(&saved); err != nil {
		// Parent upsert failed: abort before any entry write.
		return nil, err
	}

	for i := range entries {
		e := &entries[i]
		e.UserID = log.UserID
		e.DateKey = log.DateKey
		e.UpdatedAt = now

		entryFilter := bson.M{
			"userId":     e.UserID,
			"dateKey":    e.DateKey,
			"exerciseId": e.ExerciseID,
		}
		entryUpdate := bson.M{
			"$set": bson.M{
				"completed":     e.Completed,
				"weights":       e.Weights,
				"setsCompleted": e.SetsCompleted,
				"repsCompleted": e.RepsCompleted,
				"updatedAt":     e.UpdatedAt,
			},
			"$setOnInsert": bson.M{
				"_id":        primitive.NewObjectID(),
				"userId":     e.UserID,
				"dateKey":    e.DateKey,
				"exerciseId": e.ExerciseID,
			},
		}
		entryOpts := options.Update().SetUpsert(true)
		if _, err := r.entries.UpdateOne(ctx, entryFilter, entryUpdate, entryOpts); err != nil {
			return nil, err
		}
	}

	return &saved, nil
}

// EnsureWorkoutLogIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutLogIndexes(ctx context.Context, logs, entries *mongo.Collection) {
	logIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "dateKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = logs.Indexes().CreateMany(ctx, logIndexes)

	entryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "dateKey", Value: 1},
				{Key: "exerciseId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = entries.Indexes().CreateMany(ctx, entryIndexes)
}
