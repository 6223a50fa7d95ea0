package db

import (
	"context"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
	"gorm.io/gorm"
)

type FoodLogRepository struct {
	database *gorm.DB
}

func NewFoodLogRepository(database *gorm.DB) *FoodLogRepository {
	return &FoodLogRepository{database: database}
}

// ListByUserDayRange returns logs with dayStart <= date < dayEnd, oldest first.
func (repo *FoodLogRepository) ListByUserDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyFoodLog, error) {
	logs := make([]models.DailyFoodLog, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *FoodLogRepository) FindByUserAndDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyFoodLog, bool, error) {
	entry := models.DailyFoodLog{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyFoodLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyFoodLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *FoodLogRepository) Create(ctx context.Context, entry *models.DailyFoodLog) error {
	return repo.database.WithContext(ctx).Create(entry).Error
}

func (repo *FoodLogRepository) Save(ctx context.Context, entry *models.DailyFoodLog) error {
	return repo.database.WithContext(ctx).Save(entry).Error
}

// EachBatch walks every stored food log in id order.
func (repo *FoodLogRepository) EachBatch(ctx context.Context, size int, visit func(batch []models.DailyFoodLog) error) error {
	var batch []models.DailyFoodLog
	return repo.database.WithContext(ctx).Order("id ASC").FindInBatches(&batch, size, func(tx *gorm.DB, _ int) error {
		return visit(batch)
	}).Error
}
