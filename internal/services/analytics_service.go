package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidDateRange = errors.New("invalid date range")

type FoodLogRangeReader interface {
	ListByUserDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyFoodLog, error)
}

type WorkoutLogRangeReader interface {
	ListByUserDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyWorkoutLog, error)
}

type WearableSummaryRangeReader interface {
	ListByUserDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) ([]models.WearableDailySummary, error)
}

type DailySummaryItem struct {
	Date              string  `json:"date"`
	Calories          float64 `json:"calories"`
	CaloriesGoal      float64 `json:"calories_goal"`
	Protein           float64 `json:"protein"`
	ProteinGoal       float64 `json:"protein_goal"`
	WorkoutsCompleted int     `json:"workouts_completed"`
	WorkoutsPlanned   float64 `json:"workouts_planned"`
}

type WeeklySummary struct {
	Days []DailySummaryItem `json:"days"`
}

type AnalyticsService struct {
	food      FoodLogRangeReader
	workouts  WorkoutLogRangeReader
	wearables WearableSummaryRangeReader
	goals     *GoalResolver
	logger    *slog.Logger
}

func NewAnalyticsService(food FoodLogRangeReader, workouts WorkoutLogRangeReader, wearables WearableSummaryRangeReader, goals *GoalResolver, logger *slog.Logger) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{
		food:      food,
		workouts:  workouts,
		wearables: wearables,
		goals:     goals,
		logger:    logger,
	}
}

// ResolveSummaryRange defaults end to today and start to six days before
// today. It returns the first day and the exclusive end of the range.
func ResolveSummaryRange(now time.Time, start *time.Time, end *time.Time, location *time.Location) (time.Time, time.Time, error) {
	today := DateAtLocation(now, location)
	rangeStart := today.AddDate(0, 0, -(WeeklyWindowDays - 1))
	if start != nil {
		rangeStart = DateAtLocation(*start, location)
	}
	lastDay := today
	if end != nil {
		lastDay = DateAtLocation(*end, location)
	}

	if lastDay.Before(rangeStart) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if daysBetween(rangeStart, lastDay)+1 > MaxAggregationRangeDays {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return rangeStart, lastDay.AddDate(0, 0, 1), nil
}

// WeeklySummary lists every day of the range; days without logs carry zeros.
func (service *AnalyticsService) WeeklySummary(ctx context.Context, userID uint, rangeStart time.Time, rangeEnd time.Time) (WeeklySummary, error) {
	goals := service.goals.Resolve(ctx, userID)

	var foodDays []FoodDay
	var workoutDays []WorkoutDay
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logs, err := fetchOrEmpty(groupCtx, service.logger, "food_logs", userID, func(ctx context.Context) ([]models.DailyFoodLog, error) {
			return service.food.ListByUserDayRange(ctx, userID, rangeStart, rangeEnd)
		})
		foodDays = GroupFoodByDay(logs)
		return err
	})
	group.Go(func() error {
		logs, err := fetchOrEmpty(groupCtx, service.logger, "workout_logs", userID, func(ctx context.Context) ([]models.DailyWorkoutLog, error) {
			return service.workouts.ListByUserDayRange(ctx, userID, rangeStart, rangeEnd)
		})
		workoutDays = GroupWorkoutsByDay(logs)
		return err
	})
	if err := group.Wait(); err != nil {
		return WeeklySummary{}, err
	}

	foodByKey := make(map[string]FoodDay, len(foodDays))
	for _, day := range foodDays {
		foodByKey[CalendarDayKey(day.Day)] = day
	}
	workoutsByKey := make(map[string]WorkoutDay, len(workoutDays))
	for _, day := range workoutDays {
		workoutsByKey[CalendarDayKey(day.Day)] = day
	}

	plannedPerDay := roundTo(goals.WorkoutsPerWeek/7, 2)
	summary := WeeklySummary{Days: make([]DailySummaryItem, 0, RangeDayCount(rangeStart, rangeEnd))}
	for day := rangeStart; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		key := CalendarDayKey(day)
		food := foodByKey[key]
		summary.Days = append(summary.Days, DailySummaryItem{
			Date:              key,
			Calories:          food.Macros.Calories,
			CaloriesGoal:      goals.Calories,
			Protein:           food.Macros.Protein,
			ProteinGoal:       goals.Protein,
			WorkoutsCompleted: workoutsByKey[key].Workouts,
			WorkoutsPlanned:   plannedPerDay,
		})
	}
	return summary, nil
}

// AdherenceScore blends wearable activity into the score when the range has
// at least one wearable day. Details always report the unblended ratios.
func (service *AnalyticsService) AdherenceScore(ctx context.Context, userID uint, rangeStart time.Time, rangeEnd time.Time) (AdherenceScore, error) {
	goals := service.goals.Resolve(ctx, userID)

	var foodDays []FoodDay
	var workoutDays []WorkoutDay
	var wearable WearableAverages
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logs, err := fetchOrEmpty(groupCtx, service.logger, "food_logs", userID, func(ctx context.Context) ([]models.DailyFoodLog, error) {
			return service.food.ListByUserDayRange(ctx, userID, rangeStart, rangeEnd)
		})
		foodDays = GroupFoodByDay(logs)
		return err
	})
	group.Go(func() error {
		logs, err := fetchOrEmpty(groupCtx, service.logger, "workout_logs", userID, func(ctx context.Context) ([]models.DailyWorkoutLog, error) {
			return service.workouts.ListByUserDayRange(ctx, userID, rangeStart, rangeEnd)
		})
		workoutDays = GroupWorkoutsByDay(logs)
		return err
	})
	group.Go(func() error {
		if service.wearables == nil {
			return nil
		}
		summaries, err := fetchOrEmpty(groupCtx, service.logger, "wearable_daily_summaries", userID, func(ctx context.Context) ([]models.WearableDailySummary, error) {
			return service.wearables.ListByUserDayRange(ctx, userID, rangeStart, rangeEnd)
		})
		wearable = AverageWearable(summaries)
		return err
	})
	if err := group.Wait(); err != nil {
		return AdherenceScore{}, err
	}

	ratios := ComputeAdherenceRatios(foodDays, workoutDays, goals, RangeDayCount(rangeStart, rangeEnd))
	blended := BlendWearable(ratios.Weighted(), WearableActivity{
		Available:         wearable.Days > 0,
		AvgCaloriesBurned: wearable.CaloriesBurned,
		AvgActiveMinutes:  wearable.ActiveMinutes,
	}, goals.Calories)

	return AdherenceScore{
		Score:   ScoreFromFraction(blended),
		Details: ratios.Details(),
	}, nil
}

func (service *AnalyticsService) Streaks(ctx context.Context, userID uint, now time.Time, location *time.Location) (Streaks, error) {
	goals := service.goals.Resolve(ctx, userID)
	windowStart, windowEnd := WindowRange(now, StreakLookbackDays, location)
	today := DateAtLocation(now, location)

	var foodDays []FoodDay
	var workoutDays []WorkoutDay
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logs, err := fetchOrEmpty(groupCtx, service.logger, "food_logs", userID, func(ctx context.Context) ([]models.DailyFoodLog, error) {
			return service.food.ListByUserDayRange(ctx, userID, windowStart, windowEnd)
		})
		foodDays = GroupFoodByDay(logs)
		return err
	})
	group.Go(func() error {
		logs, err := fetchOrEmpty(groupCtx, service.logger, "workout_logs", userID, func(ctx context.Context) ([]models.DailyWorkoutLog, error) {
			return service.workouts.ListByUserDayRange(ctx, userID, windowStart, windowEnd)
		})
		workoutDays = GroupWorkoutsByDay(logs)
		return err
	})
	if err := group.Wait(); err != nil {
		return Streaks{}, err
	}

	return Streaks{
		DietStreak:    CurrentStreak(FoodDaysMeeting(foodDays, caloriesOf, goals.Calories), today),
		ProteinStreak: CurrentStreak(FoodDaysMeeting(foodDays, proteinOf, goals.Protein), today),
		WorkoutStreak: CurrentStreak(WorkoutDates(workoutDays), today),
	}, nil
}

func (service *AnalyticsService) WorkoutStreak(ctx context.Context, userID uint, now time.Time, location *time.Location) (WorkoutStreakInfo, error) {
	windowStart, windowEnd := WindowRange(now, StreakLookbackDays, location)
	logs, err := fetchOrEmpty(ctx, service.logger, "workout_logs", userID, func(ctx context.Context) ([]models.DailyWorkoutLog, error) {
		return service.workouts.ListByUserDayRange(ctx, userID, windowStart, windowEnd)
	})
	if err != nil {
		return WorkoutStreakInfo{}, err
	}
	return BuildWorkoutStreakInfo(WorkoutDates(GroupWorkoutsByDay(logs)), DateAtLocation(now, location)), nil
}

func caloriesOf(day FoodDay) float64 { return day.Macros.Calories }

func proteinOf(day FoodDay) float64 { return day.Macros.Protein }

// fetchOrEmpty turns a failed read into an empty source. Only cancellation of
// ctx is reported back to the caller.
func fetchOrEmpty[T any](ctx context.Context, logger *slog.Logger, source string, userID uint, fetch func(context.Context) ([]T, error)) ([]T, error) {
	records, err := fetch(ctx)
	if err == nil {
		return records, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	logger.Warn("aggregation source unavailable", "source", source, "user_id", userID, "error", err)
	return nil, nil
}
