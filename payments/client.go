// Package payments wraps the Stripe PaymentIntent API behind a narrow
// Service interface so handlers can be exercised without network access.
package payments

import (
	"context"

	stripeapi "github.com/stripe/stripe-go/v82"
	stripeintent "github.com/stripe/stripe-go/v82/paymentintent"
)

// StatusSucceeded is the only intent status that allows a purchase to be
// finalized.
const StatusSucceeded = "succeeded"

// Intent is the subset of a Stripe PaymentIntent relevant to the application.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// IntentParams holds the parameters for creating a payment intent.
type IntentParams struct {
	// Amount is expressed in minor currency units.
	Amount       int64
	ReceiptEmail string
	Name         string
	Product      string
}

// Service is the payment collaborator consumed by the API handlers.
type Service interface {
	CreateIntent(ctx context.Context, params *IntentParams) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}

// Client implements Service against the Stripe API.
type Client struct {
	config *Config
}

// NewClient creates a new Stripe payments client with the given configuration.
func NewClient(config *Config) *Client {
	stripeapi.Key = config.APIKey
	return &Client{config: config}
}

// CreateIntent creates a new payment intent with automatic payment methods
// enabled and the buyer identity carried in the intent metadata.
func (c *Client) CreateIntent(ctx context.Context, params *IntentParams) (*Intent, error) {
	piParams := c.buildIntentParams(params)
	piParams.Context = ctx
	pi, err := stripeintent.New(piParams)
	if err != nil {
		return nil, ErrAPICallFailed.wrap("failed to create payment intent", err)
	}
	return intentFromStripe(pi), nil
}

// RetrieveIntent fetches a payment intent by its ID.
func (*Client) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	piParams := &stripeapi.PaymentIntentParams{}
	piParams.Context = ctx
	pi, err := stripeintent.Get(id, piParams)
	if err != nil {
		return nil, ErrAPICallFailed.wrap("failed to retrieve payment intent", err)
	}
	return intentFromStripe(pi), nil
}

func (c *Client) buildIntentParams(params *IntentParams) *stripeapi.PaymentIntentParams {
	piParams := &stripeapi.PaymentIntentParams{
		Amount:       stripeapi.Int64(params.Amount),
		Currency:     stripeapi.String(c.config.Currency),
		ReceiptEmail: stripeapi.String(params.ReceiptEmail),
		AutomaticPaymentMethods: &stripeapi.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripeapi.Bool(true),
		},
	}
	piParams.AddMetadata("name", params.Name)
	piParams.AddMetadata("email", params.ReceiptEmail)
	piParams.AddMetadata("product", params.Product)
	return piParams
}

func intentFromStripe(pi *stripeapi.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}
}
