package handlers

import (
	"context"

	"github.com/anjiri1684/precision_martial/models"
	"github.com/anjiri1684/precision_martial/payments"
	"github.com/gofiber/fiber/v2"
)

type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type PaymentHandler struct {
	provider PaymentProvider
}

func NewPaymentHandler(provider PaymentProvider) *PaymentHandler {
	return &PaymentHandler{provider: provider}
}

// CreatePaymentIntent charges round(price*100) cents in USD. Nothing is stored;
// the enrollment is removed separately once the client confirms the charge.
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req models.PaymentIntentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	amount := payments.AmountInMinorUnits(req.Price)
	secret, err := h.provider.CreateIntent(c.UserContext(), amount, payments.Currency)
	if err != nil {
		return serverError(c, err, "Failed to create payment intent")
	}
	return c.JSON(models.PaymentIntentResponse{ClientSecret: secret})
}
