// handlers/kudos_routes.go
package handlers

import (
	"strconv"

	"kudospot/services"

	"github.com/gofiber/fiber/v2"
)

func SetupKudosRoutes(app *fiber.App, kudosService *services.KudosService) {
	// Paginated feed, newest first
	app.Get("/kudos", func(c *fiber.Ctx) error {
		page, _ := strconv.Atoi(c.Query("page", "1"))
		limit, _ := strconv.Atoi(c.Query("limit", "10"))

		feed, err := kudosService.GetFeed(page, limit)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(feed)
	})

	app.Post("/kudos", func(c *fiber.Ctx) error {
		var input services.CreateKudosInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON body"})
		}

		kudos, err := kudosService.CreateKudos(input)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(kudos)
	})

	app.Post("/kudos/:id/like", func(c *fiber.Ctx) error {
		type Req struct {
			UserName string `json:"userName"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON body"})
		}

		kudos, err := kudosService.LikeKudos(c.Params("id"), req.UserName)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(kudos)
	})

	// Everything the named user gave or received
	app.Get("/kudos/user/:name", func(c *fiber.Ctx) error {
		kudos, err := kudosService.GetByUser(c.Params("name"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(kudos)
	})
}
