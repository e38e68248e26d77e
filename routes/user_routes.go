package routes

import (
	"github.com/anjiri1684/precision_martial/handlers"
	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App, h *handlers.UserHandler, guard fiber.Handler) {
	app.Post("/users", h.CreateUser)
	app.Get("/allInstructors", h.ListInstructors)

	users := app.Group("/allUsers")
	users.Get("", h.ListUsers)

	users.Get("/admin/:email", guard, h.CheckAdmin)
	users.Patch("/admin/:id", h.MakeAdmin)
	users.Get("/instructor/:email", guard, h.CheckInstructor)
	users.Patch("/instructor/:id", h.MakeInstructor)

	users.Get("/:email", h.GetUserByEmail)
	users.Delete("/:id", h.DeleteUser)
}
