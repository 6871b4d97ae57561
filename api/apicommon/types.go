// Package apicommon holds the request and response types of the HTTP API,
// shared with clients and tests.
package apicommon

// PaymentIntentRequest is the body accepted by POST /create-payment-intent.
// Product and Amount are optional; the server applies defaults when absent.
type PaymentIntentRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Product string `json:"product,omitempty"`
	Amount  int64  `json:"amount,omitempty"`
}

// PaymentIntentResponse carries the opaque secret the client needs to
// complete the payment client-side.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentSuccessRequest is the body accepted by POST /payment-success.
type PaymentSuccessRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	Product         string `json:"product,omitempty"`
}

// PaymentSuccessResponse confirms the finalized purchase and returns the
// freshly minted access token.
type PaymentSuccessResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}
