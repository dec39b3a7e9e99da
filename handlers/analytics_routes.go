// handlers/analytics_routes.go
package handlers

import (
	"kudospot/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAnalyticsRoutes(app *fiber.App, analyticsService *services.AnalyticsService) {
	app.Get("/analytics/kudos-by-badge", func(c *fiber.Ctx) error {
		stats, err := analyticsService.KudosByBadge()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(stats)
	})

	app.Get("/analytics/leaderboard", func(c *fiber.Ctx) error {
		entries, err := analyticsService.Leaderboard()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(entries)
	})

	app.Get("/analytics/most-liked", func(c *fiber.Ctx) error {
		kudos, err := analyticsService.MostLiked()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(kudos)
	})

	app.Get("/analytics/user-stats/:name", func(c *fiber.Ctx) error {
		stats, err := analyticsService.GetUserStats(c.Params("name"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(stats)
	})
}
