package models

import "time"

func MuscleGroups() []string {
	return []string{
		"chest", "back", "arms", "legs", "shoulders", "core", "cardio",
		"biceps", "triceps", "forearms", "abs", "glutes", "quads", "hamstrings", "calves",
		"running", "cycling", "walking", "swimming", "hiit", "jump_rope",
	}
}

type WorkoutEntry struct {
	ExerciseName string    `json:"exercise_name"`
	MuscleGroup  string    `json:"muscle_group"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       *float64  `json:"weight,omitempty"`
	Duration     *int      `json:"duration,omitempty"`
	Distance     *float64  `json:"distance,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	LoggedAt     time.Time `json:"logged_at"`
}

// DailyWorkoutLog totals are derived from Workouts. TotalDuration is in seconds.
type DailyWorkoutLog struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;uniqueIndex:uidx_workout_user_date" json:"user_id"`
	Date          time.Time      `gorm:"type:date;not null;uniqueIndex:uidx_workout_user_date" json:"date"`
	Workouts      []WorkoutEntry `gorm:"serializer:json" json:"workouts"`
	TotalSets     int            `gorm:"not null;default:0" json:"total_sets"`
	TotalReps     int            `gorm:"not null;default:0" json:"total_reps"`
	TotalWeight   float64        `gorm:"not null;default:0" json:"total_weight"`
	TotalDuration int            `gorm:"not null;default:0" json:"total_duration"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (entry *DailyWorkoutLog) RecomputeTotals() {
	entry.TotalSets = 0
	entry.TotalReps = 0
	entry.TotalWeight = 0
	entry.TotalDuration = 0
	for _, workout := range entry.Workouts {
		entry.TotalSets += workout.Sets
		entry.TotalReps += workout.Reps
		if workout.Weight != nil {
			entry.TotalWeight += *workout.Weight
		}
		if workout.Duration != nil {
			entry.TotalDuration += *workout.Duration
		}
	}
}
