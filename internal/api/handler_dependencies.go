package api

import (
	"github.com/terraincognita07/fitsense/internal/db"
	"github.com/terraincognita07/fitsense/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	repos := db.NewRepositories(database)
	handler.repositories = repos

	goals := services.NewGoalResolver(repos.Plans, repos.Users, handler.logger)
	handler.catalog = services.NewCatalogNutrition(nil)
	handler.analytics = services.NewAnalyticsService(repos.FoodLogs, repos.WorkoutLogs, repos.WearableSummary, goals, handler.logger)
	handler.insights = services.NewInsightsService(
		repos.Users,
		repos.HealthProfiles,
		repos.FoodLogs,
		repos.WorkoutLogs,
		repos.WearableSummary,
		repos.HealthSync,
		goals,
		handler.logger,
	)
	handler.food = services.NewFoodLogService(repos.FoodLogs, handler.catalog)
	handler.workouts = services.NewWorkoutLogService(repos.WorkoutLogs)
	handler.profiles = services.NewHealthProfileService(repos.HealthProfiles, repos.Users)
	handler.healthSync = services.NewHealthSyncService(repos.HealthSync)
	handler.wearables = services.NewWearableService(repos.WearableTokens, repos.WearableSummary, repos.HealthSync)
	handler.plans = services.NewPlanService(repos.Plans)
	return handler
}
