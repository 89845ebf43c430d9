package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourly/pkg/utils"
)

func TestNewPaymentService(t *testing.T) {
	_, err := NewPaymentService(StripeConfig{})
	assert.Error(t, err)

	svc, err := NewPaymentService(StripeConfig{SecretKey: "sk_test_123"})
	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestCreatePaymentIntentRejectsNonPositivePrice(t *testing.T) {
	svc, err := NewPaymentService(StripeConfig{SecretKey: "sk_test_123", Currency: "EUR"})
	require.NoError(t, err)

	_, err = svc.CreatePaymentIntent(context.Background(), 0)
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	_, err = svc.CreatePaymentIntent(context.Background(), -5)
	assert.ErrorIs(t, err, utils.ErrMissingFields)
}
