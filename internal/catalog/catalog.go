// Package catalog holds the static weekly workout plan. The table is
// reference data: built once at init, read-only afterwards. Saturday and
// Sunday are rest days and have no plan; "Daily" is a pseudo-day whose
// exercises apply every day regardless of weekday.
package catalog

import (
	"strings"

	"fitweek/fitness-tracker/internal/domain"
)

// DailyKey is the pseudo-day key for exercises that apply every day.
const DailyKey = "Daily"

var plans = map[string]domain.WorkoutPlan{
	"Monday": {
		ID:   "monday",
		Name: "Chest & Triceps",
		Exercises: []domain.PlanExercise{
			{ID: "bench-press", Name: "Barbell Bench Press", Category: domain.CategoryPrimary, Sets: 4, Reps: "8-10"},
			{ID: "incline-db-press", Name: "Incline Dumbbell Press", Category: domain.CategoryPrimary, Sets: 3, Reps: "10-12"},
			{ID: "tricep-pushdown", Name: "Tricep Pushdown", Category: domain.CategoryPrimary, Sets: 3, Reps: "12-15"},
			{ID: "cable-fly", Name: "Cable Fly", Category: domain.CategoryOptional, Sets: 3, Reps: "12-15"},
			{ID: "treadmill-easy", Name: "Treadmill, easy pace", Category: domain.CategoryCardio, Sets: 1, Reps: "15 min"},
		},
	},
	"Tuesday": {
		ID:   "tuesday",
		Name: "Back & Biceps",
		Exercises: []domain.PlanExercise{
			{ID: "deadlift", Name: "Deadlift", Category: domain.CategoryPrimary, Sets: 4, Reps: "5-6"},
			{ID: "lat-pulldown", Name: "Lat Pulldown", Category: domain.CategoryPrimary, Sets: 3, Reps: "10-12"},
			{ID: "barbell-row", Name: "Barbell Row", Category: domain.CategoryPrimary, Sets: 3, Reps: "8-10"},
			{ID: "db-curl", Name: "Dumbbell Curl", Category: domain.CategoryOptional, Sets: 3, Reps: "12-15"},
		},
	},
	"Wednesday": {
		ID:   "wednesday",
		Name: "Legs",
		Exercises: []domain.PlanExercise{
			{ID: "back-squat", Name: "Barbell Back Squat", Category: domain.CategoryPrimary, Sets: 4, Reps: "6-8"},
			{ID: "leg-press", Name: "Leg Press", Category: domain.CategoryPrimary, Sets: 3, Reps: "10-12"},
			{ID: "romanian-deadlift", Name: "Romanian Deadlift", Category: domain.CategoryPrimary, Sets: 3, Reps: "10-12"},
			{ID: "calf-raise", Name: "Standing Calf Raise", Category: domain.CategoryOptional, Sets: 4, Reps: "15-20"},
		},
	},
	"Thursday": {
		ID:   "thursday",
		Name: "Shoulders & Arms",
		Exercises: []domain.PlanExercise{
			{ID: "overhead-press", Name: "Overhead Press", Category: domain.CategoryPrimary, Sets: 4, Reps: "6-8"},
			{ID: "lateral-raise", Name: "Lateral Raise", Category: domain.CategoryPrimary, Sets: 3, Reps: "12-15"},
			{ID: "face-pull", Name: "Face Pull", Category: domain.CategoryPrimary, Sets: 3, Reps: "15-20"},
			{ID: "hammer-curl", Name: "Hammer Curl", Category: domain.CategoryOptional, Sets: 3, Reps: "12-15"},
			{ID: "rowing-machine", Name: "Rowing Machine", Category: domain.CategoryCardio, Sets: 1, Reps: "10 min"},
		},
	},
	"Friday": {
		ID:   "friday",
		Name: "Full Body Circuit",
		Exercises: []domain.PlanExercise{
			{ID: "kb-swing", Name: "Kettlebell Swing", Category: domain.CategoryCircuit, Sets: 3, Reps: "20"},
			{ID: "goblet-squat", Name: "Goblet Squat", Category: domain.CategoryCircuit, Sets: 3, Reps: "15"},
			{ID: "push-up", Name: "Push-Up", Category: domain.CategoryCircuit, Sets: 3, Reps: "max"},
			{ID: "burpee", Name: "Burpee", Category: domain.CategoryCircuit, Sets: 3, Reps: "10"},
			{ID: "bike-intervals", Name: "Bike Intervals", Category: domain.CategoryCardio, Sets: 1, Reps: "12 min"},
		},
	},
	DailyKey: {
		ID:   "daily",
		Name: "Every Day",
		Exercises: []domain.PlanExercise{
			{ID: "plank", Name: "Plank", Category: domain.CategoryDaily, Sets: 3, Reps: "45 sec"},
			{ID: "stretching", Name: "Mobility & Stretching", Category: domain.CategoryDaily, Sets: 1, Reps: "10 min"},
		},
	},
}

// Lookup returns the plan for a weekday name ("Monday".."Friday") or the
// Daily pseudo-day. An unrecognized or rest-day key yields ok=false, which
// callers treat as "no workout", never as an error.
func Lookup(day string) (domain.WorkoutPlan, bool) {
	plan, ok := plans[day]
	return plan, ok
}

// LookupByRoute resolves a lowercased route key ("monday") the same way
// Lookup resolves a weekday name.
func LookupByRoute(route string) (domain.WorkoutPlan, bool) {
	if route == "" {
		return domain.WorkoutPlan{}, false
	}
	day := strings.ToUpper(route[:1]) + strings.ToLower(route[1:])
	return Lookup(day)
}

// Daily returns the pseudo-day plan applicable every day.
func Daily() domain.WorkoutPlan {
	return plans[DailyKey]
}

// TrainingDays lists the weekday names that have a plan, Monday first.
func TrainingDays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}
