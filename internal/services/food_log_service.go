package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
)

const maxWaterML = 10000.0

var (
	ErrInvalidMealType    = errors.New("invalid meal type")
	ErrInvalidFoodInput   = errors.New("invalid food input")
	ErrFoodNotFound       = errors.New("food item not found")
	ErrInvalidWaterAmount = errors.New("invalid water amount")
	ErrFoodLogNotFound    = errors.New("daily food log not found")
	ErrFoodEntryNotFound  = errors.New("food entry not found")
)

type FoodLogStore interface {
	FindByUserAndDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyFoodLog, bool, error)
	Create(ctx context.Context, entry *models.DailyFoodLog) error
	Save(ctx context.Context, entry *models.DailyFoodLog) error
}

type FoodLogInput struct {
	FoodName string
	Quantity float64
	MealType string
	Day      time.Time
}

type FoodLogService struct {
	logs      FoodLogStore
	nutrition NutritionLookup
	now       func() time.Time
}

func NewFoodLogService(logs FoodLogStore, nutrition NutritionLookup) *FoodLogService {
	return &FoodLogService{logs: logs, nutrition: nutrition, now: time.Now}
}

func IsValidMealType(mealType string) bool {
	return slices.Contains(models.MealTypes(), mealType)
}

func (service *FoodLogService) LogFood(ctx context.Context, userID uint, input FoodLogInput, location *time.Location) (models.DailyFoodLog, error) {
	mealType := strings.ToLower(strings.TrimSpace(input.MealType))
	if !IsValidMealType(mealType) {
		return models.DailyFoodLog{}, ErrInvalidMealType
	}
	if strings.TrimSpace(input.FoodName) == "" || input.Quantity <= 0 {
		return models.DailyFoodLog{}, ErrInvalidFoodInput
	}

	food, found, err := service.nutrition.Lookup(ctx, input.FoodName)
	if err != nil {
		return models.DailyFoodLog{}, err
	}
	if !found {
		return models.DailyFoodLog{}, ErrFoodNotFound
	}

	entry, exists, err := service.loadOrEmpty(ctx, userID, input.Day, location)
	if err != nil {
		return models.DailyFoodLog{}, err
	}
	entry.Meals[mealType] = append(entry.Meals[mealType], models.FoodEntry{
		FoodName: food.Name,
		Quantity: input.Quantity,
		MealType: mealType,
		Macros:   MacrosForQuantity(food, input.Quantity),
		LoggedAt: service.now().UTC(),
	})
	entry.RecomputeTotals()

	if err := service.persist(ctx, &entry, exists); err != nil {
		return models.DailyFoodLog{}, err
	}
	return entry, nil
}

// DailyLog returns an empty, unsaved log when the day has no record.
func (service *FoodLogService) DailyLog(ctx context.Context, userID uint, day time.Time, location *time.Location) (models.DailyFoodLog, error) {
	entry, _, err := service.loadOrEmpty(ctx, userID, day, location)
	return entry, err
}

// DeleteEntry removes one entry and keeps the record even when it ends up
// empty.
func (service *FoodLogService) DeleteEntry(ctx context.Context, userID uint, day time.Time, mealType string, index int, location *time.Location) (models.DailyFoodLog, error) {
	mealType = strings.ToLower(strings.TrimSpace(mealType))
	if !IsValidMealType(mealType) {
		return models.DailyFoodLog{}, ErrInvalidMealType
	}

	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.logs.FindByUserAndDayRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyFoodLog{}, err
	}
	if !found {
		return models.DailyFoodLog{}, ErrFoodLogNotFound
	}

	items := entry.Meals[mealType]
	if index < 0 || index >= len(items) {
		return models.DailyFoodLog{}, ErrFoodEntryNotFound
	}
	entry.Meals[mealType] = slices.Delete(items, index, index+1)
	entry.RecomputeTotals()

	if err := service.logs.Save(ctx, &entry); err != nil {
		return models.DailyFoodLog{}, err
	}
	return entry, nil
}

func (service *FoodLogService) SetWater(ctx context.Context, userID uint, day time.Time, waterML float64, location *time.Location) (models.DailyFoodLog, error) {
	if waterML < 0 || waterML > maxWaterML {
		return models.DailyFoodLog{}, ErrInvalidWaterAmount
	}

	entry, exists, err := service.loadOrEmpty(ctx, userID, day, location)
	if err != nil {
		return models.DailyFoodLog{}, err
	}
	entry.WaterML = &waterML

	if err := service.persist(ctx, &entry, exists); err != nil {
		return models.DailyFoodLog{}, err
	}
	return entry, nil
}

func (service *FoodLogService) loadOrEmpty(ctx context.Context, userID uint, day time.Time, location *time.Location) (models.DailyFoodLog, bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.logs.FindByUserAndDayRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyFoodLog{}, false, err
	}
	if !found {
		entry = models.DailyFoodLog{UserID: userID, Date: dayStart}
	}
	if entry.Meals == nil {
		entry.Meals = make(map[string][]models.FoodEntry, len(models.MealTypes()))
	}
	for _, mealType := range models.MealTypes() {
		if entry.Meals[mealType] == nil {
			entry.Meals[mealType] = []models.FoodEntry{}
		}
	}
	return entry, found, nil
}

func (service *FoodLogService) persist(ctx context.Context, entry *models.DailyFoodLog, exists bool) error {
	if exists {
		return service.logs.Save(ctx, entry)
	}
	return service.logs.Create(ctx, entry)
}
