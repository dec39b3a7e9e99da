// handlers/user_routes.go
package handlers

import (
	"kudospot/services"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	app.Get("/users", func(c *fiber.Ctx) error {
		users, err := userService.GetAllUsers()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(users)
	})

	// Login is create-if-absent: first sight of a name makes the user.
	app.Post("/users/login", func(c *fiber.Ctx) error {
		type Req struct {
			Name string `json:"name"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON body"})
		}

		user, err := userService.Login(req.Name)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(user)
	})

	app.Get("/users/:id", func(c *fiber.Ctx) error {
		user, err := userService.GetUserByID(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(user)
	})
}
