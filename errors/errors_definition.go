// Package errors provides custom error types and definitions for the application.
package errors

import (
	"fmt"
	"net/http"
)

// The custom Error type satisfies the error interface.
// Error() returns a human-readable description of the error.
//
// Error codes in the 40001-49999 range are the caller's fault,
// and they return HTTP Status 400 or 404, whatever is most appropriate.
//
// Error codes 50001-59999 are the server's fault
// and they return HTTP Status 500 or 503.
//
// NEVER change any of the current error codes, only append new errors after
// the current last 4XXX or 5XXX. There's no correlation between Code and
// HTTP Status.
var (
	// Validation errors (400). Only missing required fields are the caller's
	// fault; undecodable bodies are treated as unexpected failures and get
	// ErrGenericInternalServerError instead.
	ErrMissingFields = Error{Code: 40002, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("Missing required fields")}

	// Payment state errors (400). ErrPaymentNotConfirmed is always written
	// through Withf with the actual intent status, which yields messages of
	// the form "Payment not confirmed. Status: requires_payment_method".
	ErrPaymentNotConfirmed = Error{Code: 40003, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("Payment not confirmed. Status")}

	// Server errors (500) - these carry generic messages only; the underlying
	// collaborator error is logged server-side and never returned to the caller.
	ErrPaymentIntentFailed        = Error{Code: 50001, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("could not create payment intent, please try again")}
	ErrEmailSendFailed            = Error{Code: 50002, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("payment succeeded but the access email could not be sent, please contact support")}
	ErrGenericInternalServerError = Error{Code: 50003, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("server error: operation failed")}
)
