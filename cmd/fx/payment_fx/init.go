package payment_fx

import (
	"os"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"tourly/internal/services"
)

var Module = fx.Provide(
	providePaymentService)

func providePaymentService() services.PaymentServiceInterface {
	cfg := services.StripeConfig{
		SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:  os.Getenv("PAYMENT_CURRENCY"),
	}

	instance, err := services.NewPaymentService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing payment service")
	}
	return instance
}
