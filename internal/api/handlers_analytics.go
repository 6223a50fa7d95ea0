package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/services"
)

func (handler *Handler) WeeklySummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rangeStart, rangeEnd, err := handler.summaryRange(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	summary, err := handler.analytics.WeeklySummary(c.UserContext(), user.ID, rangeStart, rangeEnd)
	if err != nil {
		return handler.internalError(c, "failed to build weekly summary", err)
	}
	return c.JSON(summary)
}

func (handler *Handler) AdherenceScore(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rangeStart, rangeEnd, err := handler.summaryRange(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	score, err := handler.analytics.AdherenceScore(c.UserContext(), user.ID, rangeStart, rangeEnd)
	if err != nil {
		return handler.internalError(c, "failed to compute adherence score", err)
	}
	return c.JSON(score)
}

func (handler *Handler) Streaks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	streaks, err := handler.analytics.Streaks(c.UserContext(), user.ID, handler.now(), handler.location)
	if err != nil {
		return handler.internalError(c, "failed to compute streaks", err)
	}
	return c.JSON(streaks)
}

// summaryRange applies the query bounds. Missing bounds default to the week
// ending today.
func (handler *Handler) summaryRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, end, err := services.ParseDateRangeQuery(c.Query("start_date"), c.Query("end_date"), handler.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return services.ResolveSummaryRange(handler.now(), start, end, handler.location)
}
