package payment

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

// LineItem describes one cart position for the payment provider.
// UnitAmount is in the currency's minor units.
type LineItem struct {
	Name        string
	Description string
	Currency    string
	UnitAmount  int64
	Quantity    int64
}

// Client builds a hosted checkout session and returns its redirect URL.
type Client interface {
	CreateCheckoutSession(ctx context.Context, items []LineItem) (string, error)
}

// StripeClient implements Client against Stripe's hosted checkout.
type StripeClient struct {
	successURL string
	cancelURL  string
	logger     *log.Logger
}

func NewStripe(apiKey, successURL, cancelURL string, logger *log.Logger) *StripeClient {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	stripe.Key = apiKey
	return &StripeClient{
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, items []LineItem) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			productData.Description = stripe.String(item.Description)
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(item.Currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(c.successURL),
		CancelURL:          stripe.String(c.cancelURL),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		c.logger.Printf("payment: create checkout session error=%v", err)
		return "", fmt.Errorf("stripe: create checkout session: %w", err)
	}
	c.logger.Printf("payment: created checkout session id=%s", sess.ID)
	return sess.URL, nil
}
