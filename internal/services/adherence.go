package services

import (
	"math"
	"time"
)

const (
	calorieAdherenceWeight = 0.4
	proteinAdherenceWeight = 0.3
	workoutAdherenceWeight = 0.3

	wearableCaloriesWeight    = 0.6
	wearableActivityWeight    = 0.4
	wearableActiveMinutesGoal = 30.0
	wearableBlendWeight       = 0.6
	// wearableBlendWeightCap is not reached by wearableBlendWeight.
	wearableBlendWeightCap = 0.7
)

type AdherenceRatios struct {
	Calories float64
	Protein  float64
	Workouts float64
}

type AdherenceDetails struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Workouts float64 `json:"workouts"`
}

type AdherenceScore struct {
	Score   int              `json:"score"`
	Details AdherenceDetails `json:"details"`
}

// WearableActivity is the optional enrichment for the adherence endpoint.
// Available is false when no wearable day falls in the range.
type WearableActivity struct {
	Available         bool
	AvgCaloriesBurned float64
	AvgActiveMinutes  float64
}

// DayRatio is actual/goal capped to [0,1]; the goal is floored at 1.
func DayRatio(actual float64, goal float64) float64 {
	ratio := actual / flooredGoal(goal)
	return math.Max(0, math.Min(1, ratio))
}

// ComputeAdherenceRatios averages the per-day ratios over rangeDays, so a day
// without logs counts as zero.
func ComputeAdherenceRatios(food []FoodDay, workouts []WorkoutDay, goals Goals, rangeDays int) AdherenceRatios {
	if rangeDays < 1 {
		rangeDays = 1
	}

	calorieSum := 0.0
	proteinSum := 0.0
	for _, day := range food {
		calorieSum += DayRatio(day.Macros.Calories, goals.Calories)
		proteinSum += DayRatio(day.Macros.Protein, goals.Protein)
	}

	workoutCount := 0
	for _, day := range workouts {
		workoutCount += day.Workouts
	}

	return AdherenceRatios{
		Calories: calorieSum / float64(rangeDays),
		Protein:  proteinSum / float64(rangeDays),
		Workouts: WorkoutRatio(float64(workoutCount)/float64(rangeDays), goals.WorkoutsPerWeek),
	}
}

func WorkoutRatio(avgWorkoutsPerDay float64, workoutsPerWeek float64) float64 {
	plannedPerDay := math.Max(0, workoutsPerWeek) / 7
	if plannedPerDay <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, avgWorkoutsPerDay/plannedPerDay))
}

func (ratios AdherenceRatios) Weighted() float64 {
	return ratios.Calories*calorieAdherenceWeight +
		ratios.Protein*proteinAdherenceWeight +
		ratios.Workouts*workoutAdherenceWeight
}

func (ratios AdherenceRatios) Score() int {
	return ScoreFromFraction(ratios.Weighted())
}

func (ratios AdherenceRatios) Details() AdherenceDetails {
	return AdherenceDetails{
		Calories: roundTo(ratios.Calories*100, 1),
		Protein:  roundTo(ratios.Protein*100, 1),
		Workouts: roundTo(ratios.Workouts*100, 1),
	}
}

// BlendWearable mixes the wearable sub-score into base when activity is
// available and returns base unchanged otherwise.
func BlendWearable(base float64, activity WearableActivity, calorieGoal float64) float64 {
	if !activity.Available {
		return base
	}

	caloriesRatio := math.Min(1, activity.AvgCaloriesBurned/flooredGoal(calorieGoal))
	activityRatio := math.Min(1, activity.AvgActiveMinutes/wearableActiveMinutesGoal)
	wearableScore := caloriesRatio*wearableCaloriesWeight + activityRatio*wearableActivityWeight

	weight := math.Min(wearableBlendWeightCap, wearableBlendWeight)
	return base*(1-weight) + wearableScore*weight
}

func ScoreFromFraction(fraction float64) int {
	return clampScore(int(math.Round(fraction * 100)))
}

func RangeDayCount(start time.Time, endExclusive time.Time) int {
	return max(1, daysBetween(start, endExclusive))
}

func clampScore(score int) int {
	return max(0, min(100, score))
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
