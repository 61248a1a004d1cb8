package dates_test

import (
	"testing"
	"time"

	"fitweek/fitness-tracker/internal/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekFor_StartsOnMondayForEveryReferenceDay(t *testing.T) {
	// 2021-05-03 is a Monday; walk a full week of reference dates.
	monday := time.Date(2021, 5, 3, 14, 30, 0, 0, time.UTC)
	for offset := 0; offset < 7; offset++ {
		ref := monday.AddDate(0, 0, offset)
		week := dates.WeekFor(ref)

		require.Len(t, week, 7)
		assert.Equal(t, "Monday", week[0].DayName)
		assert.Equal(t, monday.Day(), week[0].Date.Day(), "ref %s should map back to the same Monday", ref.Weekday())

		for i := 1; i < 7; i++ {
			diff := week[i].Date.Sub(week[i-1].Date)
			assert.Equal(t, 24*time.Hour, diff, "days must be strictly consecutive")
		}
	}
}

func TestWeekFor_DayNamesInOrder(t *testing.T) {
	week := dates.WeekFor(time.Date(2023, 11, 15, 9, 0, 0, 0, time.UTC)) // a Wednesday
	wantNames := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	require.Len(t, week, 7)
	for i, wd := range week {
		assert.Equal(t, wantNames[i], wd.DayName)
	}
}

func TestWeekFor_ExactlyOneIsToday(t *testing.T) {
	refs := []time.Time{
		time.Date(2021, 5, 3, 0, 0, 0, 0, time.UTC),    // Monday, midnight
		time.Date(2021, 5, 9, 23, 59, 59, 0, time.UTC), // Sunday, end of day
		time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),   // year boundary
		time.Date(2024, 2, 29, 6, 0, 0, 0, time.UTC),   // leap day
	}
	for _, ref := range refs {
		week := dates.WeekFor(ref)
		todayCount := 0
		for _, wd := range week {
			if wd.IsToday {
				todayCount++
				assert.Equal(t, dates.FormatKey(ref), wd.Key)
			}
		}
		assert.Equal(t, 1, todayCount, "ref %s", ref)
	}
}

func TestWeekFor_SundayBelongsToPrecedingMondayWeek(t *testing.T) {
	sunday := time.Date(2021, 5, 9, 10, 0, 0, 0, time.UTC)
	week := dates.WeekFor(sunday)
	assert.Equal(t, 3, week[0].Date.Day()) // Monday May 3rd
	assert.True(t, week[6].IsToday)
}

func TestFormatKey_TimeOfDayInvariant(t *testing.T) {
	morning := time.Date(2022, 8, 15, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2022, 8, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, dates.FormatKey(morning), dates.FormatKey(evening))
	assert.Equal(t, "Monday, August 15, 2022", dates.FormatKey(morning))
}

func TestFormatKey_InjectiveOverAYear(t *testing.T) {
	seen := make(map[string]time.Time)
	day := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		key := dates.FormatKey(day)
		if prev, ok := seen[key]; ok {
			t.Fatalf("key %q produced by both %s and %s", key, prev, day)
		}
		seen[key] = day
		day = day.AddDate(0, 0, 1)
	}
}

func TestIsRestDay(t *testing.T) {
	assert.True(t, dates.IsRestDay("Saturday"))
	assert.True(t, dates.IsRestDay("Sunday"))
	assert.False(t, dates.IsRestDay("Monday"))
	assert.False(t, dates.IsRestDay("Friday"))
	assert.False(t, dates.IsRestDay("saturday")) // day names are canonical
}
