package payments

// Config holds the payment processor configuration.
type Config struct {
	// APIKey is the Stripe secret key used for every API call.
	APIKey string
	// Currency is the ISO code applied to every charge.
	Currency string
}

// NewConfig validates and returns a payment configuration.
func NewConfig(apiKey, currency string) (*Config, error) {
	if apiKey == "" {
		return nil, ErrInvalidConfiguration.withMessage("Stripe secret key is required")
	}
	if currency == "" {
		return nil, ErrInvalidConfiguration.withMessage("currency is required")
	}
	return &Config{
		APIKey:   apiKey,
		Currency: currency,
	}, nil
}
