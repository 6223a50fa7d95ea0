package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/services"
)

func (handler *Handler) WearableStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	status, err := handler.wearables.Status(c.UserContext(), user.ID)
	if err != nil {
		return handler.internalError(c, "failed to fetch wearable status", err)
	}
	return c.JSON(status)
}

// WearableSummary answers null when neither wearable days nor a health sync
// exist for the user.
func (handler *Handler) WearableSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days := services.ParseWearableRange(c.Query("range"))
	summary, err := handler.wearables.Summary(c.UserContext(), user.ID, days, handler.now(), handler.location)
	if err != nil {
		return handler.internalError(c, "failed to build wearable summary", err)
	}
	return c.JSON(summary)
}
