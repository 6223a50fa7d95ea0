package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/models"
	"github.com/terraincognita07/fitsense/internal/security"
)

const (
	contextUserKey = "current_user"
	bearerPrefix   = "bearer "
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return nil, security.ErrInvalidToken
	}

	claims, err := security.ParseAuthToken(handler.secretKey, strings.TrimSpace(header[len(bearerPrefix):]))
	if err != nil {
		return nil, err
	}

	user, found, err := handler.repositories.Users.FindByID(c.UserContext(), claims.UserID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, security.ErrInvalidToken
	}
	return &user, nil
}
