// handlers/respond.go
package handlers

import (
	"errors"

	"kudospot/services"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service error onto the HTTP status its class calls for:
// invalid input → 400, missing resource → 404, duplicate like → 409,
// anything unrecognized → 500.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrUnknownBadge),
		errors.Is(err, services.ErrSelfKudos),
		errors.Is(err, services.ErrNameRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})

	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrKudosNotFound),
		errors.Is(err, services.ErrBadgeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})

	case errors.Is(err, services.ErrAlreadyLiked):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "unexpected store failure",
			"cause":   err.Error(),
		})
	}
}
