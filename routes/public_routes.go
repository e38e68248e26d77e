package routes

import (
	"github.com/gofiber/fiber/v2"
)

const LivenessMessage = "Precision Martial is running..."

func PublicRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(LivenessMessage)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
}
