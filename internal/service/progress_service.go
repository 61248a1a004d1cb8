package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitweek/fitness-tracker/internal/dates"

	"github.com/sirupsen/logrus"
)

// WeeklyTarget is the fixed weekly completion target: 3 completed items per
// day across 7 days. The progress bar ratio is clamped against it.
const WeeklyTarget = 21

// DayStats is one day of the weekly progress view.
type DayStats struct {
	Day            string    `json:"day"`            // weekday name
	Date           string    `json:"date"`           // formatted date key
	OriginalDate   time.Time `json:"originalDate"`   // underlying calendar date
	CompletedCount int       `json:"completedCount"` // entries with completed=true
	IsToday        bool      `json:"isToday"`
	RestDay        bool      `json:"restDay"`         // rendered distinctly, not clickable
	Route          string    `json:"route,omitempty"` // "/workout/<day>", empty on rest days
}

// WeeklyProgress bundles the per-day stats with week totals.
type WeeklyProgress struct {
	Days           []DayStats `json:"days"`
	TotalCompleted int        `json:"totalCompleted"`
	TargetRatio    float64    `json:"targetRatio"`
}

// ProgressService aggregates workout-log data over the canonical week.
type ProgressService interface {
	WeeklyStats(ctx context.Context, userID string) (*WeeklyProgress, error)
}

type progressService struct {
	logs WorkoutLogService
	now  func() time.Time
}

// ProgressOption adjusts a progress service; used by tests to pin the clock.
type ProgressOption func(*progressService)

// WithClock replaces the reference-time source.
func WithClock(now func() time.Time) ProgressOption {
	return func(s *progressService) {
		s.now = now
	}
}

// NewProgressService creates a new ProgressService over the log service.
func NewProgressService(logs WorkoutLogService, opts ...ProgressOption) ProgressService {
	s := &progressService{
		logs: logs,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WeeklyStats walks the 7 days of the current week, fetches each day's log
// by its formatted key and counts completed entries. Rest days stay in the
// result (their logs still count when present); they just carry no route.
func (s *progressService) WeeklyStats(ctx context.Context, userID string) (*WeeklyProgress, error) {
	week := dates.WeekFor(s.now())
	progress := &WeeklyProgress{Days: make([]DayStats, 0, len(week))}

	for _, wd := range week {
		entries, err := s.logs.GetDayLog(ctx, userID, wd.Key)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"userId":  userID,
				"dateKey": wd.Key,
			}).Error("failed to fetch day log for weekly stats")
			return nil, err
		}

		completed := 0
		for _, e := range entries {
			if e.Completed {
				completed++
			}
		}

		day := DayStats{
			Day:            wd.DayName,
			Date:           wd.Key,
			OriginalDate:   wd.Date,
			CompletedCount: completed,
			IsToday:        wd.IsToday,
			RestDay:        dates.IsRestDay(wd.DayName),
		}
		if !day.RestDay {
			day.Route = fmt.Sprintf("/workout/%s", strings.ToLower(wd.DayName))
		}
		progress.Days = append(progress.Days, day)
	}

	progress.TotalCompleted = TotalCompleted(progress.Days)
	progress.TargetRatio = TargetRatio(progress.TotalCompleted)
	return progress, nil
}

// TotalCompleted sums the per-day completed counts across the week.
func TotalCompleted(days []DayStats) int {
	total := 0
	for _, d := range days {
		total += d.CompletedCount
	}
	return total
}

// TargetRatio maps a weekly total onto [0,1] against the fixed target,
// clamped so a progress bar never exceeds 100%.
func TargetRatio(total int) float64 {
	if total <= 0 {
		return 0
	}
	ratio := float64(total) / float64(WeeklyTarget)
	if ratio > 1 {
		return 1
	}
	return ratio
}
