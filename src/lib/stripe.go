package lib

import (
	"context"
	"os"
	"tabiway/src/config"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

// CreatePaymentIntent creates a payment-intent resource for a booking.
// Repeated calls for the same booking create distinct intents; no idempotency
// key is sent.
func CreatePaymentIntent(ctx context.Context, amount int64, currency, bookingID, customerEmail string) (*stripe.PaymentIntent, error) {
	sc := GetStripeClient()
	if currency == "" {
		currency = config.DefaultCurrency
	}
	params := stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		Metadata: map[string]string{"bookingId": bookingID},
	}
	if customerEmail != "" {
		params.ReceiptEmail = stripe.String(customerEmail)
	}
	pi, err := sc.V1PaymentIntents.Create(ctx, &params)
	if err != nil {
		return nil, err
	}
	return pi, nil
}
