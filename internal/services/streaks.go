package services

import (
	"sort"
	"time"
)

type Streaks struct {
	DietStreak    int `json:"diet_streak"`
	ProteinStreak int `json:"protein_streak"`
	WorkoutStreak int `json:"workout_streak"`
}

type WorkoutStreakInfo struct {
	CurrentStreak    int     `json:"current_streak"`
	LongestStreak    int     `json:"longest_streak"`
	LastWorkoutDate  *string `json:"last_workout_date"`
	TotalWorkoutDays int     `json:"total_workout_days"`
}

// CurrentStreak counts consecutive days ending today. When today is missing
// but yesterday is present the walk starts from yesterday; that allowance is
// only available before the first counted day.
func CurrentStreak(dates []time.Time, today time.Time) int {
	unique := uniqueDaysDescending(dates)
	if len(unique) == 0 {
		return 0
	}

	streak := 0
	expected := civilDay(today)
	for _, day := range unique {
		switch {
		case day.Equal(expected):
			streak++
			expected = expected.AddDate(0, 0, -1)
		case streak == 0 && day.Equal(expected.AddDate(0, 0, -1)):
			streak = 1
			expected = expected.AddDate(0, 0, -2)
		default:
			return streak
		}
	}
	return streak
}

func LongestStreak(dates []time.Time) int {
	unique := uniqueDaysDescending(dates)
	if len(unique) == 0 {
		return 0
	}

	longest := 1
	run := 1
	for index := 1; index < len(unique); index++ {
		if daysBetween(unique[index], unique[index-1]) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

func BuildWorkoutStreakInfo(dates []time.Time, today time.Time) WorkoutStreakInfo {
	unique := uniqueDaysDescending(dates)
	info := WorkoutStreakInfo{
		CurrentStreak:    CurrentStreak(unique, today),
		LongestStreak:    LongestStreak(unique),
		TotalWorkoutDays: len(unique),
	}
	if len(unique) > 0 {
		last := CalendarDayKey(unique[0])
		info.LastWorkoutDate = &last
	}
	return info
}

func FoodDaysMeeting(days []FoodDay, pick func(FoodDay) float64, goal float64) []time.Time {
	threshold := flooredGoal(goal)
	matched := make([]time.Time, 0, len(days))
	for _, day := range days {
		if pick(day) >= threshold {
			matched = append(matched, day.Day)
		}
	}
	return matched
}

func WorkoutDates(days []WorkoutDay) []time.Time {
	matched := make([]time.Time, 0, len(days))
	for _, day := range days {
		if day.Workouts > 0 {
			matched = append(matched, day.Day)
		}
	}
	return matched
}

func uniqueDaysDescending(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	unique := make([]time.Time, 0, len(dates))
	for _, value := range dates {
		day := civilDay(value)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		unique = append(unique, day)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].After(unique[j]) })
	return unique
}
