package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
	"golang.org/x/sync/errgroup"
)

var ErrUserNotFound = errors.New("user not found")

const profileConfidenceFields = 6

type HealthProfileReader interface {
	FindByUser(ctx context.Context, userID uint) (models.HealthProfile, bool, error)
}

type HealthSyncLatestReader interface {
	Latest(ctx context.Context, userID uint) (models.HealthSyncRecord, bool, error)
}

type DerivedMetrics struct {
	BMI                  *float64 `json:"bmi"`
	BMICategory          *string  `json:"bmi_category"`
	AvgDailyCalories     float64  `json:"avg_daily_calories"`
	AvgDailyProtein      float64  `json:"avg_daily_protein"`
	WeeklyWorkoutMinutes float64  `json:"weekly_workout_minutes"`
	AdherenceScore       int      `json:"adherence_score"`
	ActivityLevel        string   `json:"activity_level"`
}

type OptionalUserInputs struct {
	FamilyHistory *string `json:"family_history"`
	SleepQuality  *string `json:"sleep_quality"`
	StressLevel   *string `json:"stress_level"`
}

type HealthProfileSummary struct {
	DerivedMetrics     DerivedMetrics     `json:"derived_metrics"`
	OptionalUserInputs OptionalUserInputs `json:"optional_user_inputs"`
	ConfidenceLevel    string             `json:"confidence_level"`
}

type HealthAwareness struct {
	Items           []AwarenessItem `json:"items"`
	ConfidenceLevel string          `json:"confidence_level"`
	Disclaimer      string          `json:"disclaimer"`
}

// InsightSources is everything the insight builders read for one user.
// Optional sources are nil or empty when missing.
type InsightSources struct {
	User        models.User
	Profile     *models.HealthProfile
	FoodLogs    []models.DailyFoodLog
	WorkoutLogs []models.DailyWorkoutLog
	Wearable    []models.WearableDailySummary
	HealthSync  *models.HealthSyncRecord
}

type InsightsService struct {
	users      GoalUserReader
	profiles   HealthProfileReader
	food       FoodLogRangeReader
	workouts   WorkoutLogRangeReader
	wearables  WearableSummaryRangeReader
	healthSync HealthSyncLatestReader
	goals      *GoalResolver
	logger     *slog.Logger
}

func NewInsightsService(
	users GoalUserReader,
	profiles HealthProfileReader,
	food FoodLogRangeReader,
	workouts WorkoutLogRangeReader,
	wearables WearableSummaryRangeReader,
	healthSync HealthSyncLatestReader,
	goals *GoalResolver,
	logger *slog.Logger,
) *InsightsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsService{
		users:      users,
		profiles:   profiles,
		food:       food,
		workouts:   workouts,
		wearables:  wearables,
		healthSync: healthSync,
		goals:      goals,
		logger:     logger,
	}
}

func (service *InsightsService) ProfileSummary(ctx context.Context, userID uint, now time.Time, location *time.Location) (HealthProfileSummary, error) {
	sources, err := service.loadSources(ctx, userID, now, location, FoodWindowDays, FoodWindowDays, false)
	if err != nil {
		return HealthProfileSummary{}, err
	}
	goals := service.goals.Resolve(ctx, userID)
	return BuildHealthProfileSummary(sources, goals, now, location), nil
}

func (service *InsightsService) Awareness(ctx context.Context, userID uint, now time.Time, location *time.Location) (HealthAwareness, error) {
	sources, err := service.loadSources(ctx, userID, now, location, StreakLookbackDays, StreakLookbackDays, true)
	if err != nil {
		return HealthAwareness{}, err
	}
	goals := service.goals.Resolve(ctx, userID)

	if len(sources.Wearable) == 0 && service.healthSync != nil {
		record, found, err := service.healthSync.Latest(ctx, userID)
		switch {
		case err != nil:
			service.logger.Warn("aggregation source unavailable", "source", "health_sync_records", "user_id", userID, "error", err)
		case found:
			sources.HealthSync = &record
		}
	}

	inputs := BuildAwarenessInputs(sources, goals, now, location)
	service.logger.Debug("health awareness inputs resolved",
		"user_id", userID,
		"wearable_available", inputs.WearableAvailable,
		"health_sync_used", inputs.HealthSyncUsed,
	)

	return HealthAwareness{
		Items:           ScoreAwareness(inputs),
		ConfidenceLevel: AwarenessConfidence(inputs),
		Disclaimer:      AwarenessDisclaimer,
	}, nil
}

// loadSources reads the mandatory user record and the optional collections
// concurrently. Only a missing user or cancellation is an error.
func (service *InsightsService) loadSources(ctx context.Context, userID uint, now time.Time, location *time.Location, foodDays int, workoutDays int, withWearable bool) (InsightSources, error) {
	sources := InsightSources{}
	foodStart, windowEnd := WindowRange(now, foodDays, location)
	workoutStart, _ := WindowRange(now, workoutDays, location)
	wearableStart, _ := WindowRange(now, WeeklyWindowDays, location)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		user, found, err := service.users.FindByID(groupCtx, userID)
		if err != nil {
			return err
		}
		if !found {
			return ErrUserNotFound
		}
		sources.User = user
		return nil
	})
	group.Go(func() error {
		if service.profiles == nil {
			return nil
		}
		profile, found, err := service.profiles.FindByUser(groupCtx, userID)
		if err != nil {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}
			service.logger.Warn("aggregation source unavailable", "source", "health_profiles", "user_id", userID, "error", err)
			return nil
		}
		if found {
			sources.Profile = &profile
		}
		return nil
	})
	group.Go(func() error {
		logs, err := fetchOrEmpty(groupCtx, service.logger, "food_logs", userID, func(ctx context.Context) ([]models.DailyFoodLog, error) {
			return service.food.ListByUserDayRange(ctx, userID, foodStart, windowEnd)
		})
		sources.FoodLogs = logs
		return err
	})
	group.Go(func() error {
		logs, err := fetchOrEmpty(groupCtx, service.logger, "workout_logs", userID, func(ctx context.Context) ([]models.DailyWorkoutLog, error) {
			return service.workouts.ListByUserDayRange(ctx, userID, workoutStart, windowEnd)
		})
		sources.WorkoutLogs = logs
		return err
	})
	if withWearable && service.wearables != nil {
		group.Go(func() error {
			summaries, err := fetchOrEmpty(groupCtx, service.logger, "wearable_daily_summaries", userID, func(ctx context.Context) ([]models.WearableDailySummary, error) {
				return service.wearables.ListByUserDayRange(ctx, userID, wearableStart, windowEnd)
			})
			sources.Wearable = summaries
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return InsightSources{}, err
	}
	return sources, nil
}

func BuildHealthProfileSummary(sources InsightSources, goals Goals, now time.Time, location *time.Location) HealthProfileSummary {
	foodStart, _ := WindowRange(now, FoodWindowDays, location)
	weekStart, _ := WindowRange(now, WeeklyWindowDays, location)

	foodDays := foodDaysFrom(GroupFoodByDay(sources.FoodLogs), foodStart)
	workoutDays := GroupWorkoutsByDay(sources.WorkoutLogs)
	averages := AverageFood(foodDays)
	weeklyMinutes := roundTo(WorkoutMinutes(workoutDaysFrom(workoutDays, weekStart)), 1)
	adherence := ComputeAdherenceRatios(foodDays, workoutDaysFrom(workoutDays, foodStart), goals, FoodWindowDays).Score()

	derived := DerivedMetrics{
		AvgDailyCalories:     roundTo(averages.Calories, 1),
		AvgDailyProtein:      roundTo(averages.Protein, 1),
		WeeklyWorkoutMinutes: weeklyMinutes,
		AdherenceScore:       adherence,
		ActivityLevel:        ActivityLevelFromMinutes(weeklyMinutes),
	}
	if bmi := resolveBMI(sources); bmi > 0 {
		category := BMICategory(bmi)
		derived.BMI = &bmi
		derived.BMICategory = &category
	}

	present := countTrue(
		derived.BMI != nil,
		derived.AvgDailyCalories != 0,
		derived.AvgDailyProtein != 0,
		derived.WeeklyWorkoutMinutes != 0,
		derived.AdherenceScore != 0,
		derived.ActivityLevel != "",
	)

	return HealthProfileSummary{
		DerivedMetrics: derived,
		OptionalUserInputs: OptionalUserInputs{
			FamilyHistory: sources.User.FamilyHistory,
			SleepQuality:  sources.User.SleepQuality,
			StressLevel:   sources.User.StressLevel,
		},
		ConfidenceLevel: ConfidenceLevel(present, profileConfidenceFields),
	}
}

// BuildAwarenessInputs derives the scorer bundle from the raw sources. Food
// logs are expected to cover the streak lookback; the 14-day food window and
// the 7/28/30-day workout windows are cut from them here.
func BuildAwarenessInputs(sources InsightSources, goals Goals, now time.Time, location *time.Location) AwarenessInputs {
	today := DateAtLocation(now, location)
	foodStart, _ := WindowRange(now, FoodWindowDays, location)
	weekStart, _ := WindowRange(now, WeeklyWindowDays, location)
	activityStart, _ := WindowRange(now, ActivityWindowDays, location)
	instabilityStart := today.AddDate(0, 0, -InstabilityWindowDays)

	allFoodDays := GroupFoodByDay(sources.FoodLogs)
	allWorkoutDays := GroupWorkoutsByDay(sources.WorkoutLogs)
	foodDays := foodDaysFrom(allFoodDays, foodStart)
	weekWorkouts := workoutDaysFrom(allWorkoutDays, weekStart)

	inputs := AwarenessInputs{
		Food:                AverageFood(foodDays),
		HighCalorieDays:     CountHighCalorieDays(foodDays, goals.Calories),
		LowProteinDays:      CountLowProteinDays(foodDays, goals.Protein),
		WeeklyCardioMinutes: WorkoutMinutes(weekWorkouts),
		WorkoutDays:         ActiveWorkoutDays(weekWorkouts),
		StreakInstability:   StreakInstability(workoutDaysFrom(allWorkoutDays, instabilityStart)),
		DietStreak:          CurrentStreak(FoodDaysMeeting(allFoodDays, caloriesOf, goals.Calories), today),
		WorkoutStreak:       CurrentStreak(WorkoutDates(allWorkoutDays), today),
	}
	inputs.HighCaloriePercent = Percentage(inputs.HighCalorieDays, inputs.Food.Days)
	inputs.LowProteinPercent = Percentage(inputs.LowProteinDays, inputs.Food.Days)
	inputs.SedentaryDays = SedentaryDays(inputs.WorkoutDays)
	inputs.LowActivityWeeks, inputs.TotalActivityWeeks = LowActivityWeeks(workoutDaysFrom(allWorkoutDays, activityStart))
	inputs.LowActivityPercent = Percentage(inputs.LowActivityWeeks, inputs.TotalActivityWeeks)
	inputs.AdherenceScore = ComputeAdherenceRatios(
		foodDaysFrom(allFoodDays, weekStart),
		weekWorkouts,
		goals,
		WeeklyWindowDays,
	).Score()

	if bmi := resolveBMI(sources); bmi > 0 {
		inputs.BMI = &bmi
		inputs.BMICategory = BMICategory(bmi)
	}
	if sources.Profile != nil && sources.Profile.Weight > 0 {
		weight := sources.Profile.Weight
		inputs.WeightKg = &weight
	} else if sources.User.WeightKg != nil {
		inputs.WeightKg = sources.User.WeightKg
	}
	if sources.Profile != nil {
		inputs.ProfileSleepHours = sources.Profile.SleepHours
	}

	wearable := AverageWearable(wearableFrom(sources.Wearable, weekStart))
	if wearable.Days > 0 {
		inputs.WearableAvailable = true
		inputs.AvgSteps = wearable.Steps
		inputs.WearableSleep = wearable.SleepHours
		inputs.RestingHeartRate = wearable.RestingHeartRate
	} else if sources.HealthSync != nil {
		inputs.HealthSyncUsed = true
		inputs.AvgSteps = float64(sources.HealthSync.AvgSteps)
		if sources.HealthSync.RestingHeartRate != nil {
			inputs.RestingHeartRate = float64(*sources.HealthSync.RestingHeartRate)
		}
	}
	return inputs
}

// resolveBMI prefers the stored health-profile BMI and falls back to the
// user's weight and height.
func resolveBMI(sources InsightSources) float64 {
	if sources.Profile != nil && sources.Profile.BMI > 0 {
		return sources.Profile.BMI
	}
	user := sources.User
	if user.WeightKg == nil || user.HeightCm == nil || *user.WeightKg <= 0 {
		return 0
	}
	return ComputeBMI(*user.WeightKg, *user.HeightCm)
}

func foodDaysFrom(days []FoodDay, from time.Time) []FoodDay {
	start := civilDay(from)
	filtered := make([]FoodDay, 0, len(days))
	for _, day := range days {
		if !day.Day.Before(start) {
			filtered = append(filtered, day)
		}
	}
	return filtered
}

func workoutDaysFrom(days []WorkoutDay, from time.Time) []WorkoutDay {
	start := civilDay(from)
	filtered := make([]WorkoutDay, 0, len(days))
	for _, day := range days {
		if !day.Day.Before(start) {
			filtered = append(filtered, day)
		}
	}
	return filtered
}

func wearableFrom(summaries []models.WearableDailySummary, from time.Time) []models.WearableDailySummary {
	startKey := CalendarDayKey(from)
	filtered := make([]models.WearableDailySummary, 0, len(summaries))
	for _, summary := range summaries {
		if summary.Date >= startKey {
			filtered = append(filtered, summary)
		}
	}
	return filtered
}
