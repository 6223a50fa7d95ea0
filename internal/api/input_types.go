package api

import "encoding/json"

type foodLogPayload struct {
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	MealType string  `json:"meal_type"`
	Date     string  `json:"date"`
}

type waterPayload struct {
	AmountML float64 `json:"amount_ml"`
	Date     string  `json:"date"`
}

type workoutLogPayload struct {
	ExerciseName string   `json:"exercise_name"`
	MuscleGroup  string   `json:"muscle_group"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps"`
	Weight       *float64 `json:"weight"`
	Duration     *int     `json:"duration"`
	Distance     *float64 `json:"distance"`
	Notes        string   `json:"notes"`
	Date         string   `json:"date"`
}

type healthProfilePayload struct {
	Age             int     `json:"age"`
	Gender          string  `json:"gender"`
	Height          float64 `json:"height"`
	Weight          float64 `json:"weight"`
	ActivityLevel   string  `json:"activity_level"`
	FamilyHistory   string  `json:"family_history"`
	SugarIntake     string  `json:"sugar_intake"`
	SleepHours      float64 `json:"sleep_hours"`
	StressLevel     string  `json:"stress_level"`
	WorkoutsPerWeek *int    `json:"workouts_per_week"`
}

type healthSyncPayload struct {
	AvgSteps         int     `json:"avg_steps"`
	AvgSleepHours    float64 `json:"avg_sleep_hours"`
	RestingHeartRate *int    `json:"resting_heart_rate"`
	Source           string  `json:"source"`
}

type planPayload struct {
	UserInputs      json.RawMessage `json:"user_inputs"`
	ClassifierLabel string          `json:"classifier_label"`
	PlanText        string          `json:"plan_text"`
}
