package db

import "gorm.io/gorm"

type Repositories struct {
	Users           *UserRepository
	FoodLogs        *FoodLogRepository
	WorkoutLogs     *WorkoutLogRepository
	WearableSummary *WearableSummaryRepository
	WearableTokens  *WearableTokenRepository
	HealthProfiles  *HealthProfileRepository
	HealthSync      *HealthSyncRepository
	Plans           *PlanRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(database),
		FoodLogs:        NewFoodLogRepository(database),
		WorkoutLogs:     NewWorkoutLogRepository(database),
		WearableSummary: NewWearableSummaryRepository(database),
		WearableTokens:  NewWearableTokenRepository(database),
		HealthProfiles:  NewHealthProfileRepository(database),
		HealthSync:      NewHealthSyncRepository(database),
		Plans:           NewPlanRepository(database),
	}
}
