package routes

import (
	"github.com/anjiri1684/precision_martial/handlers"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App, h *handlers.PaymentHandler, guard fiber.Handler) {
	app.Post("/create-payment-intent", guard, h.CreatePaymentIntent)
}
