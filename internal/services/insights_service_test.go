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

type insightsFixture struct {
	users      *stubUsers
	profiles   *stubHealthProfiles
	food       *stubFoodLogs
	workouts   *stubWorkoutLogs
	wearables  *stubWearableSummaries
	healthSync *stubHealthSync
}

func newInsightsFixture() *insightsFixture {
	return &insightsFixture{
		users:      &stubUsers{users: map[uint]models.User{1: {ID: 1, Email: "user@example.com"}}},
		profiles:   &stubHealthProfiles{},
		food:       &stubFoodLogs{},
		workouts:   &stubWorkoutLogs{},
		wearables:  &stubWearableSummaries{},
		healthSync: &stubHealthSync{},
	}
}

func (fixture *insightsFixture) service() *InsightsService {
	goals := NewGoalResolver(&stubPlans{}, fixture.users, nil)
	return NewInsightsService(fixture.users, fixture.profiles, fixture.food, fixture.workouts, fixture.wearables, fixture.healthSync, goals, nil)
}

func TestAwarenessWithoutAnyDataDegrades(t *testing.T) {
	now := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	awareness, err := newInsightsFixture().service().Awareness(context.Background(), 1, now, time.UTC)
	require.NoError(t, err)
	require.Len(t, awareness.Items, 12)
	assert.Equal(t, "Unknown", awareness.Items[0].RiskLevel)
	assert.Equal(t, ConfidenceLow, awareness.ConfidenceLevel)
	assert.Equal(t, AwarenessDisclaimer, awareness.Disclaimer)
}

func TestAwarenessMissingUserIsNotFound(t *testing.T) {
	fixture := newInsightsFixture()
	now := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	_, err := fixture.service().Awareness(context.Background(), 99, now, time.UTC)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = fixture.service().ProfileSummary(context.Background(), 99, now, time.UTC)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAwarenessFallsBackToHealthSync(t *testing.T) {
	fixture := newInsightsFixture()
	fixture.healthSync.records = []models.HealthSyncRecord{
		{UserID: 1, AvgSteps: 11000, AvgSleepHours: 5, RestingHeartRate: ptr(72)},
	}
	now := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	awareness, err := fixture.service().Awareness(context.Background(), 1, now, time.UTC)
	require.NoError(t, err)

	hydration := awareness.Items[0]
	assert.Contains(t, hydration.Reasons, "[Fallback] Using recent health sync data (wearable unavailable)")
	assert.Contains(t, hydration.Reasons, "[7-day wearable/sync] Daily steps: 11000 avg")

	bp := itemNamed(t, awareness.Items, "Blood Pressure Risk")
	assert.Contains(t, bp.Reasons, "[7-day wearable average] Resting heart rate: 72 bpm")
	for _, reason := range bp.Reasons {
		assert.NotContains(t, reason, "Average sleep")
	}
}

func TestAwarenessPrefersWearableOverHealthSync(t *testing.T) {
	fixture := newInsightsFixture()
	now := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	fixture.wearables.rows = []models.WearableDailySummary{
		{UserID: 1, Date: "2026-08-02", Steps: 6000, SleepMinutes: 480, RestingHeartRate: ptr(58.0)},
	}
	fixture.healthSync.records = []models.HealthSyncRecord{{UserID: 1, AvgSteps: 20000}}

	awareness, err := fixture.service().Awareness(context.Background(), 1, now, time.UTC)
	require.NoError(t, err)

	hydration := awareness.Items[0]
	assert.Contains(t, hydration.Reasons, "[7-day wearable/sync] Daily steps: 6000 avg")
	assert.NotContains(t, hydration.Reasons, "[Fallback] Using recent health sync data (wearable unavailable)")

	sleep := itemNamed(t, awareness.Items, "Sleep Quality Index")
	assert.Equal(t, 90, sleep.NumericScore)
}

func TestBuildAwarenessInputsWindows(t *testing.T) {
	now := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	sources := InsightSources{
		User: models.User{ID: 1, WeightKg: ptr(90.0), HeightCm: ptr(170.0)},
		FoodLogs: []models.DailyFoodLog{
			foodLogOn(1, dayOffset(now, 0), 2500, 40),
			foodLogOn(1, dayOffset(now, -1), 2000, 80),
			foodLogOn(1, dayOffset(now, -20), 9000, 1),
		},
		WorkoutLogs: []models.DailyWorkoutLog{
			workoutLogOn(1, dayOffset(now, 0), 1, 30*60),
			workoutLogOn(1, dayOffset(now, -10), 1, 30*60),
		},
	}

	inputs := BuildAwarenessInputs(sources, DefaultGoals(), now, time.UTC)

	assert.Equal(t, 2, inputs.Food.Days, "food outside the 14-day window is ignored")
	assert.Equal(t, 2250.0, inputs.Food.Calories)
	assert.Equal(t, 1, inputs.HighCalorieDays)
	assert.Equal(t, 50.0, inputs.HighCaloriePercent)
	assert.Equal(t, 1, inputs.LowProteinDays)
	assert.Equal(t, 30.0, inputs.WeeklyCardioMinutes)
	assert.Equal(t, 1, inputs.WorkoutDays)
	assert.Equal(t, 6, inputs.SedentaryDays)
	assert.Equal(t, 100, inputs.StreakInstability)
	assert.Equal(t, 2, inputs.DietStreak)
	assert.Equal(t, 1, inputs.WorkoutStreak)
	require.NotNil(t, inputs.BMI)
	assert.Equal(t, 31.14, *inputs.BMI)
	assert.Equal(t, "Obese", inputs.BMICategory)
	assert.False(t, inputs.WearableAvailable)
	assert.False(t, inputs.HealthSyncUsed)
}

func TestProfileSummary(t *testing.T) {
	fixture := newInsightsFixture()
	fixture.users.users[1] = models.User{ID: 1, FamilyHistory: ptr("diabetes"), StressLevel: ptr("high")}
	fixture.profiles.profile = &models.HealthProfile{UserID: 1, BMI: 24.5}
	now := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	for offset := 0; offset < 14; offset++ {
		fixture.food.logs = append(fixture.food.logs, foodLogOn(1, dayOffset(now, -offset), 2000, 75))
	}
	fixture.workouts.logs = []models.DailyWorkoutLog{workoutLogOn(1, dayOffset(now, -2), 1, 100*60)}

	summary, err := fixture.service().ProfileSummary(context.Background(), 1, now, time.UTC)
	require.NoError(t, err)

	derived := summary.DerivedMetrics
	require.NotNil(t, derived.BMI)
	assert.Equal(t, 24.5, *derived.BMI)
	assert.Equal(t, "Normal", *derived.BMICategory)
	assert.Equal(t, 2000.0, derived.AvgDailyCalories)
	assert.Equal(t, 75.0, derived.AvgDailyProtein)
	assert.Equal(t, 100.0, derived.WeeklyWorkoutMinutes)
	assert.Equal(t, "Moderate", derived.ActivityLevel)
	assert.Equal(t, ConfidenceHigh, summary.ConfidenceLevel)
	assert.Equal(t, "diabetes", *summary.OptionalUserInputs.FamilyHistory)
	assert.Nil(t, summary.OptionalUserInputs.SleepQuality)
}

func TestProfileSummaryWithoutDataIsLowConfidence(t *testing.T) {
	fixture := newInsightsFixture()
	fixture.profiles.err = errors.New("profile table missing")
	now := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	summary, err := fixture.service().ProfileSummary(context.Background(), 1, now, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, summary.DerivedMetrics.BMI)
	assert.Equal(t, "Sedentary", summary.DerivedMetrics.ActivityLevel)
	assert.Equal(t, ConfidenceLow, summary.ConfidenceLevel)
}
