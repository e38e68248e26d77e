package routes

import (
	"github.com/anjiri1684/precision_martial/handlers"
	"github.com/gofiber/fiber/v2"
)

func ClassRoutes(app *fiber.App, h *handlers.ClassHandler) {
	app.Get("/approved-classes", h.ListApprovedClasses)

	classes := app.Group("/classes")
	classes.Post("", h.CreateClass)
	classes.Get("", h.ListClasses)

	// GetClass falls through to ListInstructorClasses for non-ObjectID params.
	classes.Get("/:id", h.GetClass)
	classes.Get("/:email", h.ListInstructorClasses)

	classes.Patch("/approved/:id", h.ApproveClass)
	classes.Patch("/deny/:id", h.DenyClass)
	classes.Put("/update/:id", h.UpdateClass)
	classes.Put("/:id/feedback", h.UpsertFeedback)
}
