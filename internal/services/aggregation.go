package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
)

const (
	WeeklyWindowDays          = 7
	FoodWindowDays            = 14
	ActivityWindowDays        = 28
	InstabilityWindowDays     = 30
	StreakLookbackDays        = 365
	MaxAggregationRangeDays   = 365
	lowActivityWeekMinutes    = 90.0
	highCalorieGoalMultiplier = 1.2
	lowProteinGoalMultiplier  = 0.7
)

// FoodDay is the sum of one calendar day's food logs.
type FoodDay struct {
	Day     time.Time
	Macros  models.Macros
	WaterML float64
}

// WorkoutDay is the sum of one calendar day's workout logs.
type WorkoutDay struct {
	Day             time.Time
	Workouts        int
	DurationSeconds int
}

// FoodAverages holds per-day means over the Days that had a food log.
type FoodAverages struct {
	Days     int
	Calories float64
	Protein  float64
	Fat      float64
	Sugar    float64
	Fiber    float64
	Sodium   float64
	WaterML  float64
}

// WearableAverages holds per-day means over distinct wearable days.
type WearableAverages struct {
	Days             int
	Steps            float64
	SleepHours       float64
	RestingHeartRate float64
	ActiveMinutes    float64
	CaloriesBurned   float64
}

// GroupFoodByDay sums every log that falls on the same calendar day and
// returns the days in ascending order. Days without a log are absent.
func GroupFoodByDay(logs []models.DailyFoodLog) []FoodDay {
	byKey := make(map[string]*FoodDay, len(logs))
	for _, entry := range logs {
		key := CalendarDayKey(entry.Date)
		day, ok := byKey[key]
		if !ok {
			day = &FoodDay{Day: civilDay(entry.Date)}
			byKey[key] = day
		}
		day.Macros = day.Macros.Add(entry.TotalMacros)
		if entry.WaterML != nil {
			day.WaterML += *entry.WaterML
		}
	}

	days := make([]FoodDay, 0, len(byKey))
	for _, day := range byKey {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day.Before(days[j].Day) })
	return days
}

func GroupWorkoutsByDay(logs []models.DailyWorkoutLog) []WorkoutDay {
	byKey := make(map[string]*WorkoutDay, len(logs))
	for _, entry := range logs {
		key := CalendarDayKey(entry.Date)
		day, ok := byKey[key]
		if !ok {
			day = &WorkoutDay{Day: civilDay(entry.Date)}
			byKey[key] = day
		}
		day.Workouts += len(entry.Workouts)
		day.DurationSeconds += entry.TotalDuration
	}

	days := make([]WorkoutDay, 0, len(byKey))
	for _, day := range byKey {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day.Before(days[j].Day) })
	return days
}

// AverageFood averages over the days present, not the full window.
func AverageFood(days []FoodDay) FoodAverages {
	if len(days) == 0 {
		return FoodAverages{}
	}

	var sum models.Macros
	water := 0.0
	for _, day := range days {
		sum = sum.Add(day.Macros)
		water += day.WaterML
	}

	count := float64(len(days))
	return FoodAverages{
		Days:     len(days),
		Calories: sum.Calories / count,
		Protein:  sum.Protein / count,
		Fat:      sum.Fat / count,
		Sugar:    sum.Sugar / count,
		Fiber:    sum.Fiber / count,
		Sodium:   sum.Sodium / count,
		WaterML:  water / count,
	}
}

func CountHighCalorieDays(days []FoodDay, calorieGoal float64) int {
	threshold := flooredGoal(calorieGoal) * highCalorieGoalMultiplier
	count := 0
	for _, day := range days {
		if day.Macros.Calories >= threshold {
			count++
		}
	}
	return count
}

func CountLowProteinDays(days []FoodDay, proteinGoal float64) int {
	threshold := flooredGoal(proteinGoal) * lowProteinGoalMultiplier
	count := 0
	for _, day := range days {
		if day.Macros.Protein < threshold {
			count++
		}
	}
	return count
}

func Percentage(part int, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// WorkoutMinutes converts the summed total_duration seconds to minutes.
func WorkoutMinutes(days []WorkoutDay) float64 {
	seconds := 0
	for _, day := range days {
		seconds += day.DurationSeconds
	}
	return float64(seconds) / 60
}

func ActiveWorkoutDays(days []WorkoutDay) int {
	count := 0
	for _, day := range days {
		if day.Workouts > 0 {
			count++
		}
	}
	return count
}

func SedentaryDays(activeDays int) int {
	if activeDays >= WeeklyWindowDays {
		return 0
	}
	return WeeklyWindowDays - activeDays
}

// LowActivityWeeks buckets workout minutes by ISO week. Only weeks holding at
// least one record are counted; total is never below one.
func LowActivityWeeks(days []WorkoutDay) (int, int) {
	type isoWeek struct{ year, week int }
	minutes := make(map[isoWeek]float64)
	for _, day := range days {
		year, week := day.Day.ISOWeek()
		minutes[isoWeek{year: year, week: week}] += float64(day.DurationSeconds) / 60
	}

	low := 0
	for _, total := range minutes {
		if total < lowActivityWeekMinutes {
			low++
		}
	}
	return low, max(1, len(minutes))
}

// StreakInstability is 100 below three workout days in the lookback window and
// otherwise max(0, 50-days).
func StreakInstability(days []WorkoutDay) int {
	active := ActiveWorkoutDays(days)
	if active < 3 {
		return 100
	}
	return max(0, 50-active)
}

// AverageWearable parses each stored calendar-day string at this boundary and
// drops rows whose date cannot be read. Heart rate and calories burned are
// averaged over the rows that carry them.
func AverageWearable(summaries []models.WearableDailySummary) WearableAverages {
	var (
		days                    int
		steps, sleep, active    float64
		heartRate, burned       float64
		heartRateDays, burnDays int
	)
	seen := make(map[string]struct{}, len(summaries))
	for _, summary := range summaries {
		day, err := ParseCalendarDay(summary.Date, time.UTC)
		if err != nil {
			continue
		}
		key := CalendarDayKey(day)
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}

		days++
		steps += float64(summary.Steps)
		sleep += float64(summary.SleepMinutes) / 60
		active += float64(summary.ActiveMinutes)
		if summary.RestingHeartRate != nil {
			heartRate += *summary.RestingHeartRate
			heartRateDays++
		}
		if summary.CaloriesBurned != nil {
			burned += *summary.CaloriesBurned
			burnDays++
		}
	}

	if days == 0 {
		return WearableAverages{}
	}
	result := WearableAverages{
		Days:          days,
		Steps:         steps / float64(days),
		SleepHours:    sleep / float64(days),
		ActiveMinutes: active / float64(days),
	}
	if heartRateDays > 0 {
		result.RestingHeartRate = heartRate / float64(heartRateDays)
	}
	if burnDays > 0 {
		result.CaloriesBurned = burned / float64(burnDays)
	}
	return result
}

func flooredGoal(goal float64) float64 {
	return max(1, goal)
}
