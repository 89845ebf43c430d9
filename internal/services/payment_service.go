package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"tourly/pkg/utils"
)

type StripeConfig struct {
	SecretKey string
	Currency  string // ISO 4217, defaults to usd
}

type PaymentServiceInterface interface {
	// CreatePaymentIntent returns the client secret for a new intent.
	// Amount is price converted to minor units (price x 100).
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type paymentService struct {
	cfg StripeConfig
}

func NewPaymentService(cfg StripeConfig) (PaymentServiceInterface, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("missing stripe secret key")
	}
	if cfg.Currency == "" {
		cfg.Currency = string(stripe.CurrencyUSD)
	}
	cfg.Currency = strings.ToLower(cfg.Currency)
	stripe.Key = cfg.SecretKey

	return &paymentService{cfg: cfg}, nil
}

func (p *paymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", utils.ErrMissingFields
	}

	amount := int64(math.Round(price * 100))

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(p.cfg.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
