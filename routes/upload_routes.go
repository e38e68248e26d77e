package routes

import (
	"github.com/anjiri1684/precision_martial/handlers"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App, h *handlers.UploadHandler, guard fiber.Handler) {
	uploads := app.Group("/upload", guard)
	uploads.Get("/signature", h.GenerateUploadSignature)
}
