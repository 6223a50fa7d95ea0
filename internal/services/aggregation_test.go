package services

import (
	"math"
	"testing"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
)

func TestGroupFoodByDayMergesSameDay(t *testing.T) {
	location := time.FixedZone("UTC+3", 3*60*60)
	first := time.Date(2026, 4, 2, 0, 0, 0, 0, location)
	second := time.Date(2026, 4, 1, 0, 0, 0, 0, location)

	logs := []models.DailyFoodLog{
		foodLogOn(1, first, 1200, 60),
		foodLogOn(1, second, 900, 40),
		{UserID: 1, Date: first, TotalMacros: models.Macros{Calories: 300}, WaterML: ptr(1500.0)},
	}

	days := GroupFoodByDay(logs)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if CalendarDayKey(days[0].Day) != "2026-04-01" || CalendarDayKey(days[1].Day) != "2026-04-02" {
		t.Fatalf("expected ascending local days, got %s and %s", days[0].Day, days[1].Day)
	}
	if days[1].Macros.Calories != 1500 || days[1].WaterML != 1500 {
		t.Fatalf("expected merged totals 1500 kcal and 1500 ml, got %+v", days[1])
	}
}

func TestAverageFoodUsesDaysPresent(t *testing.T) {
	days := []FoodDay{
		{Macros: models.Macros{Calories: 1000, Protein: 50, Fiber: 10}},
		{Macros: models.Macros{Calories: 3000, Protein: 100, Fiber: 30}, WaterML: 2000},
	}

	averages := AverageFood(days)
	if averages.Days != 2 || averages.Calories != 2000 || averages.Protein != 75 || averages.Fiber != 20 || averages.WaterML != 1000 {
		t.Fatalf("unexpected averages %+v", averages)
	}
	if empty := AverageFood(nil); empty != (FoodAverages{}) {
		t.Fatalf("expected zero averages without days, got %+v", empty)
	}
}

func TestCountHighCalorieAndLowProteinDays(t *testing.T) {
	days := []FoodDay{
		{Macros: models.Macros{Calories: 2400, Protein: 80}},
		{Macros: models.Macros{Calories: 2399, Protein: 52}},
		{Macros: models.Macros{Calories: 3000, Protein: 52.5}},
	}

	if got := CountHighCalorieDays(days, 2000); got != 2 {
		t.Fatalf("expected 2 high-calorie days at 1.2x goal, got %d", got)
	}
	if got := CountLowProteinDays(days, 75); got != 1 {
		t.Fatalf("expected 1 low-protein day below 0.7x goal, got %d", got)
	}
	if got := Percentage(2, 3); math.Abs(got-66.666) > 0.01 {
		t.Fatalf("expected 66.67%%, got %v", got)
	}
	if got := Percentage(1, 0); got != 0 {
		t.Fatalf("expected 0%% for empty total, got %v", got)
	}
}

func TestWorkoutAggregates(t *testing.T) {
	today := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	days := GroupWorkoutsByDay([]models.DailyWorkoutLog{
		workoutLogOn(1, today, 2, 1800),
		workoutLogOn(1, today.AddDate(0, 0, -1), 1, 1200),
		workoutLogOn(1, today.AddDate(0, 0, -2), 0, 0),
	})

	if got := WorkoutMinutes(days); got != 50 {
		t.Fatalf("expected 50 minutes from 3000 seconds, got %v", got)
	}
	if got := ActiveWorkoutDays(days); got != 2 {
		t.Fatalf("expected 2 active days, got %d", got)
	}
	if got := SedentaryDays(2); got != 5 {
		t.Fatalf("expected 5 sedentary days, got %d", got)
	}
	if got := SedentaryDays(9); got != 0 {
		t.Fatalf("expected sedentary days floored at 0, got %d", got)
	}
}

func TestLowActivityWeeks(t *testing.T) {
	monday := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	days := []WorkoutDay{
		{Day: monday, Workouts: 1, DurationSeconds: 60 * 60},
		{Day: monday.AddDate(0, 0, 2), Workouts: 1, DurationSeconds: 45 * 60},
		{Day: monday.AddDate(0, 0, 7), Workouts: 1, DurationSeconds: 30 * 60},
	}

	low, total := LowActivityWeeks(days)
	if low != 1 || total != 2 {
		t.Fatalf("expected 1 low week of 2, got %d of %d", low, total)
	}

	low, total = LowActivityWeeks(nil)
	if low != 0 || total != 1 {
		t.Fatalf("expected 0 of 1 without records, got %d of %d", low, total)
	}
}

func TestStreakInstability(t *testing.T) {
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	few := []WorkoutDay{{Day: base, Workouts: 1}, {Day: base.AddDate(0, 0, 1), Workouts: 1}}
	if got := StreakInstability(few); got != 100 {
		t.Fatalf("expected 100 below three days, got %d", got)
	}

	many := make([]WorkoutDay, 0, 10)
	for offset := 0; offset < 10; offset++ {
		many = append(many, WorkoutDay{Day: base.AddDate(0, 0, offset), Workouts: 1})
	}
	if got := StreakInstability(many); got != 40 {
		t.Fatalf("expected 50-10=40, got %d", got)
	}
}

func TestAverageWearableSkipsBadDatesAndNilValues(t *testing.T) {
	summaries := []models.WearableDailySummary{
		{Date: "2026-04-01", Steps: 8000, SleepMinutes: 420, ActiveMinutes: 30, RestingHeartRate: ptr(60.0)},
		{Date: "2026-04-02", Steps: 12000, SleepMinutes: 480, ActiveMinutes: 50, CaloriesBurned: ptr(500.0)},
		{Date: "2026-04-02", Steps: 1},
		{Date: "not-a-date", Steps: 99999},
	}

	averages := AverageWearable(summaries)
	if averages.Days != 2 {
		t.Fatalf("expected 2 usable days, got %d", averages.Days)
	}
	if averages.Steps != 10000 || averages.SleepHours != 7.5 || averages.ActiveMinutes != 40 {
		t.Fatalf("unexpected averages %+v", averages)
	}
	if averages.RestingHeartRate != 60 || averages.CaloriesBurned != 500 {
		t.Fatalf("expected nullable fields averaged over present rows, got %+v", averages)
	}
}
