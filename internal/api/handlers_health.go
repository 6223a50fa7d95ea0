package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/services"
)

func (handler *Handler) SaveHealthProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := healthProfilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	bmi, err := handler.profiles.Save(c.UserContext(), user.ID, services.HealthProfileInput{
		Age:             payload.Age,
		Gender:          payload.Gender,
		Height:          payload.Height,
		Weight:          payload.Weight,
		ActivityLevel:   payload.ActivityLevel,
		FamilyHistory:   payload.FamilyHistory,
		SugarIntake:     payload.SugarIntake,
		SleepHours:      payload.SleepHours,
		StressLevel:     payload.StressLevel,
		WorkoutsPerWeek: payload.WorkoutsPerWeek,
	})
	if errors.Is(err, services.ErrInvalidHealthProfile) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return handler.internalError(c, "failed to save health profile", err)
	}
	return c.JSON(fiber.Map{"ok": true, "bmi": bmi})
}

func (handler *Handler) ProfileDiseaseAwareness(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	results, err := handler.profiles.DiseaseAwareness(c.UserContext(), user.ID)
	if errors.Is(err, services.ErrHealthProfileNotFound) {
		return apiError(c, fiber.StatusNotFound, "health profile not found")
	}
	if err != nil {
		return handler.internalError(c, "failed to score health profile", err)
	}
	return c.JSON(results)
}

func (handler *Handler) SyncHealthData(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := healthSyncPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	record, err := handler.healthSync.Sync(c.UserContext(), user.ID, services.HealthSyncInput{
		AvgSteps:         payload.AvgSteps,
		AvgSleepHours:    payload.AvgSleepHours,
		RestingHeartRate: payload.RestingHeartRate,
		Source:           payload.Source,
	})
	switch {
	case errors.Is(err, services.ErrInvalidSyncSource),
		errors.Is(err, services.ErrInvalidSyncSteps),
		errors.Is(err, services.ErrInvalidSyncSleep),
		errors.Is(err, services.ErrInvalidSyncHeartRate):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return handler.internalError(c, "failed to store health sync", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) HealthSyncStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	status, err := handler.healthSync.Status(c.UserContext(), user.ID)
	if err != nil {
		return handler.internalError(c, "failed to fetch sync status", err)
	}
	return c.JSON(status)
}
