package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/services"
)

const defaultWorkoutHistoryDays = 30

func (handler *Handler) LogWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := workoutLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.parseDayParam(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.workouts.LogWorkout(c.UserContext(), user.ID, services.WorkoutLogInput{
		ExerciseName: payload.ExerciseName,
		MuscleGroup:  payload.MuscleGroup,
		Sets:         payload.Sets,
		Reps:         payload.Reps,
		Weight:       payload.Weight,
		Duration:     payload.Duration,
		Distance:     payload.Distance,
		Notes:        payload.Notes,
		Day:          day,
	}, handler.location)
	if err != nil {
		return handler.workoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetDailyWorkouts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.workouts.DailyLog(c.UserContext(), user.ID, day, handler.location)
	if err != nil {
		return handler.internalError(c, "failed to fetch workout log", err)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteWorkoutEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry index")
	}

	entry, err := handler.workouts.DeleteEntry(c.UserContext(), user.ID, day, index, handler.location)
	if err != nil {
		return handler.workoutError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) WorkoutStreak(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	info, err := handler.analytics.WorkoutStreak(c.UserContext(), user.ID, handler.now(), handler.location)
	if err != nil {
		return handler.internalError(c, "failed to compute workout streak", err)
	}
	return c.JSON(info)
}

func (handler *Handler) WorkoutHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days, err := parseIntParam(c.Query("days"), defaultWorkoutHistoryDays)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, services.ErrInvalidHistoryDayCount.Error())
	}

	history, err := handler.workouts.History(c.UserContext(), user.ID, days, handler.now(), handler.location)
	if err != nil {
		return handler.workoutError(c, err)
	}
	return c.JSON(fiber.Map{"days": days, "history": history})
}

func (handler *Handler) workoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidMuscleGroup),
		errors.Is(err, services.ErrInvalidWorkoutInput),
		errors.Is(err, services.ErrInvalidHistoryDayCount):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrWorkoutLogNotFound),
		errors.Is(err, services.ErrWorkoutEntryNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	default:
		return handler.internalError(c, "failed to update workout log", err)
	}
}
