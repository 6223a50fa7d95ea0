package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/fitsense/internal/models"
)

func newTestAnalytics(food *stubFoodLogs, workouts *stubWorkoutLogs, wearables *stubWearableSummaries, plans *stubPlans) *AnalyticsService {
	if plans == nil {
		plans = &stubPlans{}
	}
	if wearables == nil {
		wearables = &stubWearableSummaries{}
	}
	goals := NewGoalResolver(plans, &stubUsers{}, nil)
	return NewAnalyticsService(food, workouts, wearables, goals, nil)
}

func TestResolveSummaryRange(t *testing.T) {
	now := time.Date(2026, 7, 20, 18, 0, 0, 0, time.UTC)

	start, end, err := ResolveSummaryRange(now, nil, nil, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2026-07-14", CalendarDayKey(start))
	assert.Equal(t, "2026-07-21", CalendarDayKey(end))

	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)
	start, end, err = ResolveSummaryRange(now, &from, &to, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 3, RangeDayCount(start, end))

	_, _, err = ResolveSummaryRange(now, &to, &from, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	tooEarly := now.AddDate(-2, 0, 0)
	_, _, err = ResolveSummaryRange(now, &tooEarly, nil, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestWeeklySummaryFillsEveryDay(t *testing.T) {
	now := time.Date(2026, 7, 20, 12, 0, 0, 0, time.UTC)
	food := &stubFoodLogs{logs: []models.DailyFoodLog{
		foodLogOn(1, dayOffset(now, 0), 1800, 90),
		foodLogOn(1, dayOffset(now, -3), 2200, 60),
		foodLogOn(2, dayOffset(now, 0), 5000, 5),
	}}
	workouts := &stubWorkoutLogs{logs: []models.DailyWorkoutLog{workoutLogOn(1, dayOffset(now, -3), 2, 3600)}}
	plans := &stubPlans{plans: []models.Plan{{UserID: 1, UserInputs: []byte(`{"workouts_per_week":4}`)}}}

	start, end, err := ResolveSummaryRange(now, nil, nil, time.UTC)
	require.NoError(t, err)

	summary, err := newTestAnalytics(food, workouts, &stubWearableSummaries{}, plans).WeeklySummary(context.Background(), 1, start, end)
	require.NoError(t, err)
	require.Len(t, summary.Days, 7)

	assert.Equal(t, "2026-07-14", summary.Days[0].Date)
	assert.Equal(t, 0.0, summary.Days[0].Calories)
	assert.Equal(t, 2000.0, summary.Days[0].CaloriesGoal)

	threeDaysAgo := summary.Days[3]
	assert.Equal(t, "2026-07-17", threeDaysAgo.Date)
	assert.Equal(t, 2200.0, threeDaysAgo.Calories)
	assert.Equal(t, 2, threeDaysAgo.WorkoutsCompleted)
	assert.Equal(t, 0.57, threeDaysAgo.WorkoutsPlanned)

	assert.Equal(t, 1800.0, summary.Days[6].Calories)
	assert.Equal(t, 90.0, summary.Days[6].Protein)
}

func TestAdherenceScoreBlendsWearableOnlyWhenPresent(t *testing.T) {
	now := time.Date(2026, 7, 20, 12, 0, 0, 0, time.UTC)
	food := &stubFoodLogs{}
	workouts := &stubWorkoutLogs{}
	for offset := 0; offset < 7; offset++ {
		food.logs = append(food.logs, foodLogOn(1, dayOffset(now, -offset), 2000, 75))
	}
	start, end, err := ResolveSummaryRange(now, nil, nil, time.UTC)
	require.NoError(t, err)

	base, err := newTestAnalytics(food, workouts, &stubWearableSummaries{}, nil).AdherenceScore(context.Background(), 1, start, end)
	require.NoError(t, err)
	assert.Equal(t, 70, base.Score)
	assert.Equal(t, AdherenceDetails{Calories: 100, Protein: 100, Workouts: 0}, base.Details)

	wearables := &stubWearableSummaries{rows: []models.WearableDailySummary{
		{UserID: 1, Date: CalendarDayKey(dayOffset(now, -1)), ActiveMinutes: 30, CaloriesBurned: ptr(2000.0)},
	}}
	blended, err := newTestAnalytics(food, workouts, wearables, nil).AdherenceScore(context.Background(), 1, start, end)
	require.NoError(t, err)
	// 0.7*0.4 + 1.0*0.6
	assert.Equal(t, 88, blended.Score)
	assert.Equal(t, base.Details, blended.Details)
}

func TestAdherenceScoreDegradesOnSourceFailure(t *testing.T) {
	now := time.Date(2026, 7, 20, 12, 0, 0, 0, time.UTC)
	food := &stubFoodLogs{listErr: errors.New("disk unavailable")}
	workouts := &stubWorkoutLogs{logs: []models.DailyWorkoutLog{workoutLogOn(1, dayOffset(now, 0), 3, 1800)}}
	start, end, err := ResolveSummaryRange(now, nil, nil, time.UTC)
	require.NoError(t, err)

	score, err := newTestAnalytics(food, workouts, nil, nil).AdherenceScore(context.Background(), 1, start, end)
	require.NoError(t, err)
	assert.Equal(t, 30, score.Score)
}

func TestAnalyticsStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	food := &stubFoodLogs{listErr: context.Canceled}

	now := time.Date(2026, 7, 20, 12, 0, 0, 0, time.UTC)
	_, err := newTestAnalytics(food, &stubWorkoutLogs{}, nil, nil).Streaks(ctx, 1, now, time.UTC)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreaks(t *testing.T) {
	now := time.Date(2026, 7, 20, 12, 0, 0, 0, time.UTC)
	food := &stubFoodLogs{logs: []models.DailyFoodLog{
		foodLogOn(1, dayOffset(now, 0), 2000, 50),
		foodLogOn(1, dayOffset(now, -1), 2100, 80),
		foodLogOn(1, dayOffset(now, -2), 2050, 80),
	}}
	workouts := &stubWorkoutLogs{logs: []models.DailyWorkoutLog{
		workoutLogOn(1, dayOffset(now, -1), 1, 600),
		workoutLogOn(1, dayOffset(now, -2), 1, 600),
	}}

	streaks, err := newTestAnalytics(food, workouts, nil, nil).Streaks(context.Background(), 1, now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, Streaks{DietStreak: 3, ProteinStreak: 2, WorkoutStreak: 2}, streaks)

	info, err := newTestAnalytics(food, workouts, nil, nil).WorkoutStreak(context.Background(), 1, now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 2, info.CurrentStreak)
	assert.Equal(t, 2, info.TotalWorkoutDays)
	require.NotNil(t, info.LastWorkoutDate)
	assert.Equal(t, "2026-07-19", *info.LastWorkoutDate)
}
