package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const (
	Currency          = string(stripe.CurrencyUSD)
	cardPaymentMethod = "card"
)

var ErrPaymentProvider = errors.New("payment provider error")

// AmountInMinorUnits converts a dollar price to cents. The product is rounded,
// so 19.99 becomes 1999 rather than the truncated 1998.
func AmountInMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

type StripeService struct {
	api *client.API
}

func NewStripeService(secretKey string) *StripeService {
	return NewStripeServiceWithBackends(secretKey, nil)
}

// NewStripeServiceWithBackends points the client at custom backends; nil uses Stripe's.
func NewStripeServiceWithBackends(secretKey string, backends *stripe.Backends) *StripeService {
	return &StripeService{api: client.New(secretKey, backends)}
}

// CreateIntent opens a card-only payment intent and returns its client secret.
func (s *StripeService) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{cardPaymentMethod}),
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	return intent.ClientSecret, nil
}
