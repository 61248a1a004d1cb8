// Package dates computes the canonical Monday-start week used across the
// app: schedule display, log storage keys and weekly progress all share it.
package dates

import "time"

// KeyLayout renders a calendar date as e.g. "Monday, January 2, 2006".
// The rendering is used both for display and as the storage key for a day's
// workout log, so it must stay stable: the same date always yields the same
// key and two distinct dates never collide (weekday + month + day + year
// pins the date down completely).
const KeyLayout = "Monday, January 2, 2006"

// WeekDate is one day of the canonical week.
type WeekDate struct {
	Date    time.Time `json:"date"`
	DayName string    `json:"dayName"` // "Monday".."Sunday"
	Key     string    `json:"key"`     // FormatKey(Date)
	IsToday bool      `json:"isToday"`
}

// FormatKey returns the stable string key for a calendar date. The
// time-of-day component of t is irrelevant to the result.
func FormatKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// CurrentWeekday returns the weekday name for "now", e.g. "Monday".
func CurrentWeekday() string {
	return time.Now().Weekday().String()
}

// CurrentWeek returns the 7 days of the week containing "now".
func CurrentWeek() []WeekDate {
	return WeekFor(time.Now())
}

// WeekFor returns the 7 consecutive days starting on the Monday on/before
// ref, in Monday..Sunday order. time.Weekday numbers Sunday as 0, so the
// distance back to Monday is 6 for Sunday and weekday-1 otherwise; computing
// it explicitly keeps the week Monday-first regardless of locale convention.
// IsToday is decided by formatted-key equality with ref, not by instant
// comparison, so any time of day within the same calendar date matches.
func WeekFor(ref time.Time) []WeekDate {
	idx := int(ref.Weekday()) // 0=Sunday .. 6=Saturday
	daysFromMonday := idx - 1
	if idx == 0 {
		daysFromMonday = 6
	}
	monday := ref.AddDate(0, 0, -daysFromMonday)
	refKey := FormatKey(ref)

	week := make([]WeekDate, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		key := FormatKey(d)
		week = append(week, WeekDate{
			Date:    d,
			DayName: d.Weekday().String(),
			Key:     key,
			IsToday: key == refKey,
		})
	}
	return week
}

// IsRestDay reports whether the given weekday name is a rest day.
// Rest days stay in the weekly view but have no catalog plan and are
// excluded from click navigation.
func IsRestDay(dayName string) bool {
	return dayName == time.Saturday.String() || dayName == time.Sunday.String()
}
