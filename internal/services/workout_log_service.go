package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
)

const maxWorkoutHistoryDays = 365

var (
	ErrInvalidMuscleGroup     = errors.New("invalid muscle group")
	ErrInvalidWorkoutInput    = errors.New("invalid workout input")
	ErrWorkoutLogNotFound     = errors.New("daily workout log not found")
	ErrWorkoutEntryNotFound   = errors.New("workout entry not found")
	ErrInvalidHistoryDayCount = errors.New("invalid history day count")
)

type WorkoutLogStore interface {
	WorkoutLogRangeReader
	FindByUserAndDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyWorkoutLog, bool, error)
	Create(ctx context.Context, entry *models.DailyWorkoutLog) error
	Save(ctx context.Context, entry *models.DailyWorkoutLog) error
}

type WorkoutLogInput struct {
	ExerciseName string
	MuscleGroup  string
	Sets         int
	Reps         int
	Weight       *float64
	Duration     *int
	Distance     *float64
	Notes        string
	Day          time.Time
}

type WorkoutHistoryItem struct {
	ID            uint    `json:"id"`
	Date          string  `json:"date"`
	TotalSets     int     `json:"total_sets"`
	TotalReps     int     `json:"total_reps"`
	TotalWeight   float64 `json:"total_weight"`
	TotalDuration int     `json:"total_duration"`
	WorkoutCount  int     `json:"workout_count"`
}

type WorkoutLogService struct {
	logs WorkoutLogStore
	now  func() time.Time
}

func NewWorkoutLogService(logs WorkoutLogStore) *WorkoutLogService {
	return &WorkoutLogService{logs: logs, now: time.Now}
}

func IsValidMuscleGroup(group string) bool {
	return slices.Contains(models.MuscleGroups(), group)
}

func (service *WorkoutLogService) LogWorkout(ctx context.Context, userID uint, input WorkoutLogInput, location *time.Location) (models.DailyWorkoutLog, error) {
	group := strings.ToLower(strings.TrimSpace(input.MuscleGroup))
	if !IsValidMuscleGroup(group) {
		return models.DailyWorkoutLog{}, ErrInvalidMuscleGroup
	}
	if err := validateWorkoutInput(input); err != nil {
		return models.DailyWorkoutLog{}, err
	}

	dayStart, dayEnd := DayRange(input.Day, location)
	entry, exists, err := service.logs.FindByUserAndDayRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyWorkoutLog{}, err
	}
	if !exists {
		entry = models.DailyWorkoutLog{UserID: userID, Date: dayStart}
	}

	entry.Workouts = append(entry.Workouts, models.WorkoutEntry{
		ExerciseName: strings.TrimSpace(input.ExerciseName),
		MuscleGroup:  group,
		Sets:         input.Sets,
		Reps:         input.Reps,
		Weight:       input.Weight,
		Duration:     input.Duration,
		Distance:     input.Distance,
		Notes:        strings.TrimSpace(input.Notes),
		LoggedAt:     service.now().UTC(),
	})
	entry.RecomputeTotals()

	if exists {
		err = service.logs.Save(ctx, &entry)
	} else {
		err = service.logs.Create(ctx, &entry)
	}
	if err != nil {
		return models.DailyWorkoutLog{}, err
	}
	return entry, nil
}

func (service *WorkoutLogService) DailyLog(ctx context.Context, userID uint, day time.Time, location *time.Location) (models.DailyWorkoutLog, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.logs.FindByUserAndDayRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyWorkoutLog{}, err
	}
	if !found {
		return models.DailyWorkoutLog{UserID: userID, Date: dayStart, Workouts: []models.WorkoutEntry{}}, nil
	}
	return entry, nil
}

func (service *WorkoutLogService) DeleteEntry(ctx context.Context, userID uint, day time.Time, index int, location *time.Location) (models.DailyWorkoutLog, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.logs.FindByUserAndDayRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyWorkoutLog{}, err
	}
	if !found {
		return models.DailyWorkoutLog{}, ErrWorkoutLogNotFound
	}
	if index < 0 || index >= len(entry.Workouts) {
		return models.DailyWorkoutLog{}, ErrWorkoutEntryNotFound
	}

	entry.Workouts = slices.Delete(entry.Workouts, index, index+1)
	entry.RecomputeTotals()
	if err := service.logs.Save(ctx, &entry); err != nil {
		return models.DailyWorkoutLog{}, err
	}
	return entry, nil
}

// History lists the stored days of the last dayCount days, newest first.
func (service *WorkoutLogService) History(ctx context.Context, userID uint, dayCount int, now time.Time, location *time.Location) ([]WorkoutHistoryItem, error) {
	if dayCount < 1 || dayCount > maxWorkoutHistoryDays {
		return nil, ErrInvalidHistoryDayCount
	}

	start, end := WindowRange(now, dayCount, location)
	logs, err := service.logs.ListByUserDayRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	history := make([]WorkoutHistoryItem, 0, len(logs))
	for index := len(logs) - 1; index >= 0; index-- {
		entry := logs[index]
		history = append(history, WorkoutHistoryItem{
			ID:            entry.ID,
			Date:          CalendarDayKey(entry.Date),
			TotalSets:     entry.TotalSets,
			TotalReps:     entry.TotalReps,
			TotalWeight:   entry.TotalWeight,
			TotalDuration: entry.TotalDuration,
			WorkoutCount:  len(entry.Workouts),
		})
	}
	return history, nil
}

func validateWorkoutInput(input WorkoutLogInput) error {
	if strings.TrimSpace(input.ExerciseName) == "" {
		return ErrInvalidWorkoutInput
	}
	if input.Sets < 0 || input.Reps < 0 {
		return ErrInvalidWorkoutInput
	}
	if input.Weight != nil && *input.Weight < 0 {
		return ErrInvalidWorkoutInput
	}
	if input.Duration != nil && *input.Duration < 0 {
		return ErrInvalidWorkoutInput
	}
	if input.Distance != nil && *input.Distance < 0 {
		return ErrInvalidWorkoutInput
	}
	return nil
}
