package db

import (
	"context"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
	"gorm.io/gorm"
)

type WorkoutLogRepository struct {
	database *gorm.DB
}

func NewWorkoutLogRepository(database *gorm.DB) *WorkoutLogRepository {
	return &WorkoutLogRepository{database: database}
}

func (repo *WorkoutLogRepository) ListByUserDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyWorkoutLog, error) {
	logs := make([]models.DailyWorkoutLog, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *WorkoutLogRepository) FindByUserAndDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyWorkoutLog, bool, error) {
	entry := models.DailyWorkoutLog{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyWorkoutLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyWorkoutLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *WorkoutLogRepository) Create(ctx context.Context, entry *models.DailyWorkoutLog) error {
	return repo.database.WithContext(ctx).Create(entry).Error
}

func (repo *WorkoutLogRepository) Save(ctx context.Context, entry *models.DailyWorkoutLog) error {
	return repo.database.WithContext(ctx).Save(entry).Error
}

func (repo *WorkoutLogRepository) EachBatch(ctx context.Context, size int, visit func(batch []models.DailyWorkoutLog) error) error {
	var batch []models.DailyWorkoutLog
	return repo.database.WithContext(ctx).Order("id ASC").FindInBatches(&batch, size, func(tx *gorm.DB, _ int) error {
		return visit(batch)
	}).Error
}
