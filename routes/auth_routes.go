package routes

import (
	"github.com/anjiri1684/precision_martial/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	app.Post("/jwt", h.IssueToken)
}
