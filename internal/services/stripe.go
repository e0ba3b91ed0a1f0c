package services

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeProvider creates payment intents through the Stripe API.
type StripeProvider struct {
	client *paymentintent.Client
}

func NewStripeProvider(secretKey string) *StripeProvider {
	return &StripeProvider{
		client: &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
	}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency string, methods []string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice(methods),
	}
	params.Context = ctx

	intent, err := p.client.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
