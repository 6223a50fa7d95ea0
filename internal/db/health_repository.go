package db

import (
	"context"
	"errors"

	"github.com/terraincognita07/fitsense/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HealthProfileRepository struct {
	database *gorm.DB
}

func NewHealthProfileRepository(database *gorm.DB) *HealthProfileRepository {
	return &HealthProfileRepository{database: database}
}

func (repo *HealthProfileRepository) FindByUser(ctx context.Context, userID uint) (models.HealthProfile, bool, error) {
	var profile models.HealthProfile
	err := repo.database.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.HealthProfile{}, false, nil
	}
	if err != nil {
		return models.HealthProfile{}, false, err
	}
	return profile, true, nil
}

// Upsert replaces every profile field for the user in one statement.
func (repo *HealthProfileRepository) Upsert(ctx context.Context, profile *models.HealthProfile) error {
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"age", "gender", "height", "weight", "bmi", "activity_level", "family_history",
			"sugar_intake", "sleep_hours", "stress_level", "workouts_per_week", "updated_at",
		}),
	}).Create(profile).Error
}

type HealthSyncRepository struct {
	database *gorm.DB
}

func NewHealthSyncRepository(database *gorm.DB) *HealthSyncRepository {
	return &HealthSyncRepository{database: database}
}

func (repo *HealthSyncRepository) Create(ctx context.Context, record *models.HealthSyncRecord) error {
	return repo.database.WithContext(ctx).Create(record).Error
}

func (repo *HealthSyncRepository) Latest(ctx context.Context, userID uint) (models.HealthSyncRecord, bool, error) {
	var record models.HealthSyncRecord
	err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("synced_at DESC, id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.HealthSyncRecord{}, false, nil
	}
	if err != nil {
		return models.HealthSyncRecord{}, false, err
	}
	return record, true, nil
}
