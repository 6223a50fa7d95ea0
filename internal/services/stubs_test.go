package services

import (
	"context"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
)

type stubFoodLogs struct {
	logs    []models.DailyFoodLog
	listErr error
	findErr error
	created int
	saved   int
}

func (stub *stubFoodLogs) ListByUserDayRange(_ context.Context, userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyFoodLog, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.DailyFoodLog, 0, len(stub.logs))
	for _, entry := range stub.logs {
		if entry.UserID == userID && !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (stub *stubFoodLogs) FindByUserAndDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyFoodLog, bool, error) {
	if stub.findErr != nil {
		return models.DailyFoodLog{}, false, stub.findErr
	}
	matches, _ := stub.ListByUserDayRange(ctx, userID, dayStart, dayEnd)
	if len(matches) == 0 {
		return models.DailyFoodLog{}, false, nil
	}
	return matches[0], true, nil
}

func (stub *stubFoodLogs) Create(_ context.Context, entry *models.DailyFoodLog) error {
	stub.created++
	entry.ID = uint(len(stub.logs) + 1)
	stub.logs = append(stub.logs, *entry)
	return nil
}

func (stub *stubFoodLogs) Save(_ context.Context, entry *models.DailyFoodLog) error {
	stub.saved++
	for index := range stub.logs {
		if stub.logs[index].ID == entry.ID {
			stub.logs[index] = *entry
		}
	}
	return nil
}

type stubWorkoutLogs struct {
	logs    []models.DailyWorkoutLog
	listErr error
	created int
	saved   int
}

func (stub *stubWorkoutLogs) ListByUserDayRange(_ context.Context, userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyWorkoutLog, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.DailyWorkoutLog, 0, len(stub.logs))
	for _, entry := range stub.logs {
		if entry.UserID == userID && !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (stub *stubWorkoutLogs) FindByUserAndDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyWorkoutLog, bool, error) {
	matches, err := stub.ListByUserDayRange(ctx, userID, dayStart, dayEnd)
	if err != nil || len(matches) == 0 {
		return models.DailyWorkoutLog{}, false, err
	}
	return matches[0], true, nil
}

func (stub *stubWorkoutLogs) Create(_ context.Context, entry *models.DailyWorkoutLog) error {
	stub.created++
	entry.ID = uint(len(stub.logs) + 1)
	stub.logs = append(stub.logs, *entry)
	return nil
}

func (stub *stubWorkoutLogs) Save(_ context.Context, entry *models.DailyWorkoutLog) error {
	stub.saved++
	for index := range stub.logs {
		if stub.logs[index].ID == entry.ID {
			stub.logs[index] = *entry
		}
	}
	return nil
}

type stubWearableSummaries struct {
	rows      []models.WearableDailySummary
	listErr   error
	latest    *time.Time
	upserted  []models.WearableDailySummary
	existing  map[string]bool
	existsErr error
}

func (stub *stubWearableSummaries) ListByUserDayRange(_ context.Context, userID uint, dayStart time.Time, dayEnd time.Time) ([]models.WearableDailySummary, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	startKey, endKey := dayStart.Format(CalendarDayLayout), dayEnd.Format(CalendarDayLayout)
	result := make([]models.WearableDailySummary, 0, len(stub.rows))
	for _, row := range stub.rows {
		if row.UserID == userID && row.Date >= startKey && row.Date < endKey {
			result = append(result, row)
		}
	}
	return result, nil
}

func (stub *stubWearableSummaries) LatestCreatedAt(context.Context, uint) (*time.Time, error) {
	return stub.latest, nil
}

func (stub *stubWearableSummaries) ExistsForDay(_ context.Context, _ uint, day time.Time) (bool, error) {
	if stub.existsErr != nil {
		return false, stub.existsErr
	}
	return stub.existing[day.Format(CalendarDayLayout)], nil
}

func (stub *stubWearableSummaries) Upsert(_ context.Context, summary *models.WearableDailySummary) error {
	stub.upserted = append(stub.upserted, *summary)
	return nil
}

type stubPlans struct {
	plans []models.Plan
	err   error
}

func (stub *stubPlans) LatestByUser(_ context.Context, userID uint) (models.Plan, bool, error) {
	if stub.err != nil {
		return models.Plan{}, false, stub.err
	}
	for index := len(stub.plans) - 1; index >= 0; index-- {
		if stub.plans[index].UserID == userID {
			return stub.plans[index], true, nil
		}
	}
	return models.Plan{}, false, nil
}

func (stub *stubPlans) Create(_ context.Context, plan *models.Plan) error {
	if stub.err != nil {
		return stub.err
	}
	plan.ID = uint(len(stub.plans) + 1)
	stub.plans = append(stub.plans, *plan)
	return nil
}

func (stub *stubPlans) ListByUser(_ context.Context, userID uint, limit int) ([]models.Plan, error) {
	result := make([]models.Plan, 0, limit)
	for index := len(stub.plans) - 1; index >= 0 && len(result) < limit; index-- {
		if stub.plans[index].UserID == userID {
			result = append(result, stub.plans[index])
		}
	}
	return result, nil
}

type stubUsers struct {
	users   map[uint]models.User
	err     error
	updates map[string]any
}

func (stub *stubUsers) FindByID(_ context.Context, userID uint) (models.User, bool, error) {
	if stub.err != nil {
		return models.User{}, false, stub.err
	}
	user, ok := stub.users[userID]
	return user, ok, nil
}

func (stub *stubUsers) UpdateByID(_ context.Context, _ uint, updates map[string]any) error {
	stub.updates = updates
	return stub.err
}

type stubHealthProfiles struct {
	profile *models.HealthProfile
	err     error
}

func (stub *stubHealthProfiles) FindByUser(context.Context, uint) (models.HealthProfile, bool, error) {
	if stub.err != nil {
		return models.HealthProfile{}, false, stub.err
	}
	if stub.profile == nil {
		return models.HealthProfile{}, false, nil
	}
	return *stub.profile, true, nil
}

func (stub *stubHealthProfiles) Upsert(_ context.Context, profile *models.HealthProfile) error {
	if stub.err != nil {
		return stub.err
	}
	stored := *profile
	stub.profile = &stored
	return nil
}

type stubHealthSync struct {
	records []models.HealthSyncRecord
	err     error
}

func (stub *stubHealthSync) Latest(_ context.Context, userID uint) (models.HealthSyncRecord, bool, error) {
	if stub.err != nil {
		return models.HealthSyncRecord{}, false, stub.err
	}
	for index := len(stub.records) - 1; index >= 0; index-- {
		if stub.records[index].UserID == userID {
			return stub.records[index], true, nil
		}
	}
	return models.HealthSyncRecord{}, false, nil
}

func (stub *stubHealthSync) Create(_ context.Context, record *models.HealthSyncRecord) error {
	if stub.err != nil {
		return stub.err
	}
	stub.records = append(stub.records, *record)
	return nil
}

func foodLogOn(userID uint, date time.Time, calories float64, protein float64) models.DailyFoodLog {
	return models.DailyFoodLog{
		UserID:      userID,
		Date:        date,
		TotalMacros: models.Macros{Calories: calories, Protein: protein},
	}
}

func workoutLogOn(userID uint, date time.Time, workouts int, durationSeconds int) models.DailyWorkoutLog {
	entries := make([]models.WorkoutEntry, workouts)
	for index := range entries {
		entries[index] = models.WorkoutEntry{ExerciseName: "run", MuscleGroup: "running"}
	}
	return models.DailyWorkoutLog{
		UserID:        userID,
		Date:          date,
		Workouts:      entries,
		TotalDuration: durationSeconds,
	}
}

func ptr[T any](value T) *T {
	return &value
}
