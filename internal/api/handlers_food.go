package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/services"
)

func (handler *Handler) LogFood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := foodLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.parseDayParam(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.food.LogFood(c.UserContext(), user.ID, services.FoodLogInput{
		FoodName: payload.FoodName,
		Quantity: payload.Quantity,
		MealType: payload.MealType,
		Day:      day,
	}, handler.location)
	if err != nil {
		return handler.foodError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetDailyFood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.food.DailyLog(c.UserContext(), user.ID, day, handler.location)
	if err != nil {
		return handler.internalError(c, "failed to fetch food log", err)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteFoodEntry(c *fiber.Ctx) error {
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

	entry, err := handler.food.DeleteEntry(c.UserContext(), user.ID, day, c.Params("meal"), index, handler.location)
	if err != nil {
		return handler.foodError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) LogWater(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := waterPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.parseDayParam(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.food.SetWater(c.UserContext(), user.ID, day, payload.AmountML, handler.location)
	if err != nil {
		return handler.foodError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) SearchFoods(c *fiber.Ctx) error {
	limit, err := parseIntParam(c.Query("limit"), 0)
	if err != nil || limit < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	}

	foods, err := handler.catalog.Search(c.UserContext(), c.Query("q"), limit)
	if err != nil {
		return handler.internalError(c, "failed to search foods", err)
	}
	return c.JSON(fiber.Map{"foods": foods})
}

func (handler *Handler) foodError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidMealType),
		errors.Is(err, services.ErrInvalidFoodInput),
		errors.Is(err, services.ErrInvalidWaterAmount):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrFoodNotFound),
		errors.Is(err, services.ErrFoodLogNotFound),
		errors.Is(err, services.ErrFoodEntryNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	default:
		return handler.internalError(c, "failed to update food log", err)
	}
}
