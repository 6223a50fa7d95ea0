package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.AuthRequired)

	analytics := api.Group("/analytics")
	analytics.Get("/weekly-summary", handler.WeeklySummary)
	analytics.Get("/adherence-score", handler.AdherenceScore)
	analytics.Get("/streaks", handler.Streaks)

	insights := api.Group("/insights")
	insights.Get("/profile", handler.InsightsProfile)
	insights.Get("/awareness", handler.InsightsAwareness)

	food := api.Group("/food")
	food.Post("/log", handler.LogFood)
	food.Get("/daily", handler.GetDailyFood)
	food.Delete("/log/:date/:meal/:index", handler.DeleteFoodEntry)
	food.Post("/water", handler.LogWater)
	food.Get("/search", handler.SearchFoods)

	workouts := api.Group("/workouts")
	workouts.Post("/log", handler.LogWorkout)
	workouts.Get("/daily", handler.GetDailyWorkouts)
	workouts.Delete("/log/:date/:index", handler.DeleteWorkoutEntry)
	workouts.Get("/streak", handler.WorkoutStreak)
	workouts.Get("/history", handler.WorkoutHistory)

	health := api.Group("/health")
	health.Post("/profile", handler.SaveHealthProfile)
	health.Get("/awareness", handler.ProfileDiseaseAwareness)
	health.Post("/sync", handler.SyncHealthData)
	health.Get("/sync/status", handler.HealthSyncStatus)

	wearables := api.Group("/wearables")
	wearables.Get("/status", handler.WearableStatus)
	wearables.Get("/summary", handler.WearableSummary)

	api.Post("/plans", handler.SavePlan)
	api.Get("/plans", handler.ListPlans)
}
