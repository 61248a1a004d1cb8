package service_test

import (
	"context"
	"testing"
	"time"

	"fitweek/fitness-tracker/internal/dates"
	"fitweek/fitness-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wednesday 2021-05-05; its week runs Monday May 3 .. Sunday May 9.
var statsRef = time.Date(2021, 5, 5, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return statsRef }

func TestWeeklyStats_EmptyWeek(t *testing.T) {
	logs := service.NewWorkoutLogService(newFakeLogRepo(), nil)
	svc := service.NewProgressService(logs, service.WithClock(fixedClock))

	progress, err := svc.WeeklyStats(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)

	require.Len(t, progress.Days, 7)
	assert.Equal(t, 0, progress.TotalCompleted)
	assert.Zero(t, progress.TargetRatio)
	assert.Equal(t, "Monday", progress.Days[0].Day)
	assert.True(t, progress.Days[2].IsToday)
}

func TestWeeklyStats_CountsCompletedPerDay(t *testing.T) {
	repo := newFakeLogRepo()
	logs := service.NewWorkoutLogService(repo, nil)
	svc := service.NewProgressService(logs, service.WithClock(fixedClock))
	userID := primitive.NewObjectID()

	week := dates.WeekFor(statsRef)

	// Monday: one of two completed; Wednesday: two of two.
	_, err := logs.SaveDayLog(context.Background(), userID.Hex(), week[0].Key, "monday", []service.EntryInput{
		{ExerciseID: "bench-press", Completed: true},
		{ExerciseID: "cable-fly", Completed: false},
	})
	require.NoError(t, err)
	_, err = logs.SaveDayLog(context.Background(), userID.Hex(), week[2].Key, "wednesday", []service.EntryInput{
		{ExerciseID: "back-squat", Completed: true},
		{ExerciseID: "leg-press", Completed: true},
	})
	require.NoError(t, err)

	progress, err := svc.WeeklyStats(context.Background(), userID.Hex())
	require.NoError(t, err)

	assert.Equal(t, 1, progress.Days[0].CompletedCount)
	assert.Equal(t, 0, progress.Days[1].CompletedCount)
	assert.Equal(t, 2, progress.Days[2].CompletedCount)
	assert.Equal(t, 3, progress.TotalCompleted)
	assert.InDelta(t, 3.0/21.0, progress.TargetRatio, 1e-9)
}

// Rest days stay in the 7-entry result and their logged entries still count;
// only navigation skips them.
func TestWeeklyStats_RestDaysIncludedButNotNavigable(t *testing.T) {
	repo := newFakeLogRepo()
	logs := service.NewWorkoutLogService(repo, nil)
	svc := service.NewProgressService(logs, service.WithClock(fixedClock))
	userID := primitive.NewObjectID()

	week := dates.WeekFor(statsRef)
	_, err := logs.SaveDayLog(context.Background(), userID.Hex(), week[5].Key, "daily", []service.EntryInput{
		{ExerciseID: "plank", Completed: true},
	})
	require.NoError(t, err)

	progress, err := svc.WeeklyStats(context.Background(), userID.Hex())
	require.NoError(t, err)
	require.Len(t, progress.Days, 7)

	saturday := progress.Days[5]
	assert.Equal(t, "Saturday", saturday.Day)
	assert.True(t, saturday.RestDay)
	assert.Empty(t, saturday.Route)
	assert.Equal(t, 1, saturday.CompletedCount)

	monday := progress.Days[0]
	assert.False(t, monday.RestDay)
	assert.Equal(t, "/workout/monday", monday.Route)

	assert.Equal(t, 1, progress.TotalCompleted)
}

func TestTotalCompleted_SumsDays(t *testing.T) {
	days := []service.DayStats{
		{CompletedCount: 3}, {CompletedCount: 0}, {CompletedCount: 5},
	}
	assert.Equal(t, 8, service.TotalCompleted(days))
	assert.Equal(t, 0, service.TotalCompleted(nil))
}

func TestTargetRatio(t *testing.T) {
	assert.Zero(t, service.TargetRatio(0))
	assert.InDelta(t, 1.0/21.0, service.TargetRatio(1), 1e-9)
	assert.InDelta(t, 10.0/21.0, service.TargetRatio(10), 1e-9)
	assert.InDelta(t, 20.0/21.0, service.TargetRatio(20), 1e-9)
	assert.Equal(t, 1.0, service.TargetRatio(21))
	assert.Equal(t, 1.0, service.TargetRatio(40), "ratio is clamped at 1")

	// Monotonic non-decreasing.
	prev := 0.0
	for total := 0; total <= 30; total++ {
		r := service.TargetRatio(total)
		assert.GreaterOrEqual(t, r, prev)
		prev = r
	}
}
