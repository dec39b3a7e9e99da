// handlers/badge_routes.go
package handlers

import (
	"kudospot/services"

	"github.com/gofiber/fiber/v2"
)

func SetupBadgeRoutes(app *fiber.App, badgeService *services.BadgeService) {
	app.Get("/badges", func(c *fiber.Ctx) error {
		badges, err := badgeService.GetAllBadges()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(badges)
	})

	// Idempotent seed of the fixed catalog
	app.Post("/badges/init", func(c *fiber.Ctx) error {
		badges, err := badgeService.InitBadges()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(badges)
	})
}
