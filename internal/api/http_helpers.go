package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/observability"
	"github.com/terraincognita07/fitsense/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ErrorHandler answers errors that escape a handler. Server-side failures are
// logged and reported.
func (handler *Handler) ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	if status >= fiber.StatusInternalServerError {
		handler.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		observability.CaptureError(err, map[string]string{"method": c.Method(), "route": c.Path()})
	}
	return apiError(c, status, message)
}

func (handler *Handler) today() time.Time {
	return services.DateAtLocation(handler.now(), handler.location)
}

// parseDayParam reads a YYYY-MM-DD value; blank means today.
func (handler *Handler) parseDayParam(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return handler.today(), nil
	}
	day, err := services.ParseCalendarDay(raw, handler.location)
	if err != nil {
		return time.Time{}, err
	}
	return services.DateAtLocation(day, handler.location), nil
}

func parseIntParam(raw string, fallback int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback, nil
	}
	return strconv.Atoi(trimmed)
}

func (handler *Handler) internalError(c *fiber.Ctx, message string, err error) error {
	handler.logger.Error(message, "path", c.Path(), "error", err)
	observability.CaptureError(err, map[string]string{"route": c.Path()})
	return apiError(c, fiber.StatusInternalServerError, message)
}
