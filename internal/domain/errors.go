package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrSignature distinguishes webhook authenticity failures from every
	// other webhook processing error: rejection controls gateway redelivery.
	ErrSignature = errors.New("webhook signature verification failed")

	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// ValidationError reports invalid caller input. No state is mutated when one
// is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GatewayError wraps a payment-gateway call failure. Local rows already
// inserted before the failure are left as pending, not rolled back.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string { return fmt.Sprintf("payment gateway %s: %v", e.Op, e.Err) }
func (e *GatewayError) Unwrap() error { return e.Err }
