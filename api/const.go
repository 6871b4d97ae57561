package api

import "time"

const (
	// createPaymentIntentEndpoint accepts buyer identity and product info and
	// returns the client secret of a chargeable intent.
	createPaymentIntentEndpoint = "/create-payment-intent"
	// paymentSuccessEndpoint finalizes a purchase once the intent succeeded.
	paymentSuccessEndpoint = "/payment-success"

	// DefaultAmount is the charge in minor currency units applied when the
	// request does not provide a positive amount.
	DefaultAmount int64 = 1900
	// DefaultCurrency is the fixed ISO code used for every charge.
	DefaultCurrency = "gbp"
	// DefaultProduct identifies the product sold when the request does not
	// name one.
	DefaultProduct = "ciiready-r01"

	// mailSendTimeout bounds a single access-email delivery attempt.
	mailSendTimeout = 10 * time.Second
	// storeInsertTimeout bounds a single purchase insert attempt.
	storeInsertTimeout = 10 * time.Second
)
