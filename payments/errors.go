package payments

import "fmt"

// PaymentError represents a payment-processor-specific error.
type PaymentError struct {
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment error [%s]: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("payment error [%s]: %s", e.Code, e.Message)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// Common payment errors
var (
	ErrInvalidConfiguration = &PaymentError{Code: "invalid_configuration", Message: "invalid payment configuration"}
	ErrAPICallFailed        = &PaymentError{Code: "api_call_failed", Message: "payment API call failed"}
)

func (e *PaymentError) withMessage(message string) *PaymentError {
	return &PaymentError{
		Code:    e.Code,
		Message: message,
	}
}

func (e *PaymentError) wrap(message string, err error) *PaymentError {
	return &PaymentError{
		Code:    e.Code,
		Message: message,
		Err:     err,
	}
}
