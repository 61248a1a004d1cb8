package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutLog is the parent row for one member's log on one calendar day.
// DateKey is the formatted calendar-date key (see the dates package), unique
// per (userId, dateKey). CompletedAt is set only when every entry of the last
// saved batch was completed.
type WorkoutLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	DateKey      string             `bson:"dateKey" json:"dateKey"`
	WorkoutDayID string             `bson:"workoutDayId" json:"workoutDayId"` // lowercased weekday, links to the catalog plan
	CompletedAt  *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutLogEntry records the outcome of one exercise on one day.
// Keyed (userId, dateKey, exerciseId); saves are full-day batches with
// last-write-wins upsert semantics, entries are never merged.
type WorkoutLogEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	DateKey       string             `bson:"dateKey" json:"dateKey"`
	ExerciseID    string             `bson:"exerciseId" json:"exerciseId"`
	Completed     bool               `bson:"completed" json:"completed"`
	Weights       []string           `bson:"weights" json:"weights"` // one per set, numeric-or-empty strings
	SetsCompleted *int               `bson:"setsCompleted,omitempty" json:"setsCompleted,omitempty"`
	RepsCompleted *int               `bson:"repsCompleted,omitempty" json:"repsCompleted,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BatchCompletedAt returns the completion timestamp for a full-day batch:
// non-nil when every entry is completed. Note an empty batch counts as
// completed (vacuous truth) — this mirrors the product behavior of marking
// a day done when there is nothing left unchecked.
func BatchCompletedAt(entries []WorkoutLogEntry, now time.Time) *time.Time {
	for _, e := range entries {
		if !e.Completed {
			return nil
		}
	}
	return &now
}
