package domain

// ExerciseCategory tags a plan exercise for display grouping. The set is
// closed; categories govern presentation only, never aggregation logic.
type ExerciseCategory string

const (
	CategoryPrimary  ExerciseCategory = "primary"
	CategoryOptional ExerciseCategory = "optional"
	CategoryCardio   ExerciseCategory = "cardio"
	CategoryCircuit  ExerciseCategory = "circuit"
	CategoryDaily    ExerciseCategory = "daily"
)

// PlanExercise is a single exercise within the static weekly plan.
type PlanExercise struct {
	ID       string           `json:"id"`   // stable catalog identifier, e.g. "bench-press"
	Name     string           `json:"name"` // display name
	Category ExerciseCategory `json:"category"`
	Sets     int              `json:"sets"`
	Reps     string           `json:"reps"` // "8-12", "30 sec", etc.
}

// WorkoutPlan is the fixed exercise plan for one weekday (or the "Daily"
// pseudo-day). Plans are reference data: loaded once, never mutated.
type WorkoutPlan struct {
	ID        string         `json:"id"` // lowercased day name, doubles as the route key
	Name      string         `json:"name"`
	Exercises []PlanExercise `json:"exercises"`
}
