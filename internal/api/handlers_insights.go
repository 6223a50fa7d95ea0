package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/services"
)

func (handler *Handler) InsightsProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.insights.ProfileSummary(c.UserContext(), user.ID, handler.now(), handler.location)
	if errors.Is(err, services.ErrUserNotFound) {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return handler.internalError(c, "failed to build health profile", err)
	}
	return c.JSON(summary)
}

func (handler *Handler) InsightsAwareness(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	awareness, err := handler.insights.Awareness(c.UserContext(), user.ID, handler.now(), handler.location)
	if errors.Is(err, services.ErrUserNotFound) {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return handler.internalError(c, "failed to build health awareness", err)
	}
	return c.JSON(awareness)
}
