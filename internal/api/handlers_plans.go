package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/services"
)

func (handler *Handler) SavePlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := planPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	plan, err := handler.plans.Save(c.UserContext(), user.ID, services.PlanInput{
		UserInputs:      payload.UserInputs,
		ClassifierLabel: payload.ClassifierLabel,
		PlanText:        payload.PlanText,
	})
	if errors.Is(err, services.ErrInvalidPlanInputs) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return handler.internalError(c, "failed to save plan", err)
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (handler *Handler) ListPlans(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit, err := parseIntParam(c.Query("limit"), services.DefaultPlanListLimit)
	if err != nil || limit < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	}

	plans, err := handler.plans.List(c.UserContext(), user.ID, limit)
	if err != nil {
		return handler.internalError(c, "failed to list plans", err)
	}
	return c.JSON(fiber.Map{"plans": plans})
}
