package db

import (
	"context"
	"errors"

	"github.com/terraincognita07/fitsense/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	return repo.database.WithContext(ctx).Create(plan).Error
}

func (repo *PlanRepository) LatestByUser(ctx context.Context, userID uint) (models.Plan, bool, error) {
	var plan models.Plan
	err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Plan{}, false, nil
	}
	if err != nil {
		return models.Plan{}, false, err
	}
	return plan, true, nil
}

func (repo *PlanRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.Plan, error) {
	plans := make([]models.Plan, 0)
	query := repo.database.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
