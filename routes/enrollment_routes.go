package routes

import (
	"github.com/anjiri1684/precision_martial/handlers"
	"github.com/gofiber/fiber/v2"
)

func EnrollmentRoutes(app *fiber.App, h *handlers.EnrollmentHandler) {
	enrolled := app.Group("/enrolledClasses")
	enrolled.Post("", h.CreateEnrollment)
	enrolled.Get("/:email", h.ListStudentEnrollments)
	enrolled.Delete("/:id", h.DeleteEnrollment)

	app.Get("/payment/:id", h.GetEnrollment)
}
