package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/terraincognita07/fitsense/internal/db"
	"github.com/terraincognita07/fitsense/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	logger       *slog.Logger
	now          func() time.Time
	repositories *db.Repositories

	analytics  *services.AnalyticsService
	insights   *services.InsightsService
	food       *services.FoodLogService
	catalog    *services.CatalogNutrition
	workouts   *services.WorkoutLogService
	profiles   *services.HealthProfileService
	healthSync *services.HealthSyncService
	wearables  *services.WearableService
	plans      *services.PlanService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, logger *slog.Logger) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	handler := &Handler{
		secretKey: []byte(secret),
		location:  location,
		logger:    logger,
		now:       time.Now,
	}
	return handler.withDependencies(database), nil
}
