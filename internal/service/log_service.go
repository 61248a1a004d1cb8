package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitweek/fitness-tracker/internal/cache"
	"fitweek/fitness-tracker/internal/domain"
	"fitweek/fitness-tracker/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntryInput is one exercise outcome in a day's save batch.
type EntryInput struct {
	ExerciseID    string   `json:"exerciseId"`
	Completed     bool     `json:"completed"`
	Weights       []string `json:"weights"`
	SetsCompleted *int     `json:"setsCompleted,omitempty"`
	RepsCompleted *int     `json:"repsCompleted,omitempty"`
}

// WorkoutLogService orchestrates reading and writing per-day workout logs.
type WorkoutLogService interface {
	// GetDayLog returns all entries for that member/day; a day with no log
	// yields an empty slice, never an error.
	GetDayLog(ctx context.Context, userID string, dateKey string) ([]domain.WorkoutLogEntry, error)

	// SaveDayLog replaces the member's log for a day with the given batch.
	// Callers submit the full day's entry set each time; concurrent saves
	// are last-write-wins.
	SaveDayLog(ctx context.Context, userID string, dateKey, workoutDayID string, entries []EntryInput) (*domain.WorkoutLog, error)
}

type workoutLogService struct {
	logRepo repository.WorkoutLogRepository
	cache   *cache.DayLogCache
	now     func() time.Time
}

// NewWorkoutLogService creates a new WorkoutLogService. The cache may be nil
// to disable read-through caching.
func NewWorkoutLogService(logRepo repository.WorkoutLogRepository, dayCache *cache.DayLogCache) WorkoutLogService {
	return &workoutLogService{
		logRepo: logRepo,
		cache:   dayCache,
		now:     time.Now,
	}
}

func (s *workoutLogService) GetDayLog(ctx context.Context, userID string, dateKey string) ([]domain.WorkoutLogEntry, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	if dateKey == "" {
		return nil, fmt.Errorf("%w: date key is required", ErrValidation)
	}

	if s.cache != nil {
		if day, ok := s.cache.Get(uid, dateKey); ok {
			return cachedDayToEntries(uid, dateKey, day), nil
		}
	}

	entries, err := s.logRepo.GetEntries(ctx, uid, dateKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.WorkoutLogEntry{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.cache != nil {
		s.cache.SetFromEntries(uid, dateKey, entries)
	}
	return entries, nil
}

func (s *workoutLogService) SaveDayLog(ctx context.Context, userID string, dateKey, workoutDayID string, entries []EntryInput) (*domain.WorkoutLog, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	if dateKey == "" || workoutDayID == "" {
		return nil, fmt.Errorf("%w: date key and workout day are required", ErrValidation)
	}

	batch := make([]domain.WorkoutLogEntry, 0, len(entries))
	for _, in := range entries {
		if in.ExerciseID == "" {
			return nil, fmt.Errorf("%w: entry without exercise id", ErrValidation)
		}
		batch = append(batch, domain.WorkoutLogEntry{
			UserID:        uid,
			DateKey:       dateKey,
			ExerciseID:    in.ExerciseID,
			Completed:     in.Completed,
			Weights:       in.Weights,
			SetsCompleted: in.SetsCompleted,
			RepsCompleted: in.RepsCompleted,
		})
	}

	log := &domain.WorkoutLog{
		UserID:       uid,
		DateKey:      dateKey,
		WorkoutDayID: workoutDayID,
		CompletedAt:  domain.BatchCompletedAt(batch, s.now().UTC()),
	}

	saved, err := s.logRepo.Save(ctx, log, batch)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"userId":  userID,
			"dateKey": dateKey,
		}).Error("failed to save day log")
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.cache != nil {
		s.cache.SetFromEntries(uid, dateKey, batch)
	}
	return saved, nil
}

func cachedDayToEntries(uid primitive.ObjectID, dateKey string, day cache.DayLog) []domain.WorkoutLogEntry {
	entries := make([]domain.WorkoutLogEntry, 0, len(day))
	for _, cached := range day {
		entries = append(entries, domain.WorkoutLogEntry{
			UserID:        uid,
			DateKey:       dateKey,
			ExerciseID:    cached.ExerciseID,
			Completed:     cached.Completed,
			Weights:       cached.Weights,
			SetsCompleted: cached.SetsCompleted,
			RepsCompleted: cached.RepsCompleted,
		})
	}
	return entries
}
