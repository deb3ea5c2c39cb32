package models

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every failure surfaced to a caller wraps exactly one of these.
var (
	ErrValidation            = errors.New("invalid request")
	ErrConfiguration         = errors.New("payments provider credentials are not configured")
	ErrUpstreamProvider      = errors.New("payments provider request failed")
	ErrApprovalFailed        = errors.New("token approval failed")
	ErrNotFound              = errors.New("not found")
	ErrSelectionRequired     = errors.New("payment method selection required")
	ErrQuoteExpired          = errors.New("quote expired")
	ErrIncompleteBankAccount = errors.New("bank account is missing routing or account number")
	ErrForbiddenOrigin       = errors.New("message origin is not allowed")
)

// ValidationError returns an ErrValidation describing the offending field.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ProviderError is a non-2xx answer from the payments provider.
type ProviderError struct {
	StatusCode int    // HTTP status returned by the provider
	Body       any    // decoded JSON body, or the raw text when it is not JSON
	Summary    string // human readable message
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payments provider returned %d: %s", e.StatusCode, e.Summary)
}

func (e *ProviderError) Unwrap() error { return ErrUpstreamProvider }

// SelectionError lists the candidates the user must choose between.
type SelectionError struct {
	Kind    PaymentMethodKind
	Options []string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%d %s candidates, choose one of: %s", len(e.Options), e.Kind, strings.Join(e.Options, ", "))
}

func (e *SelectionError) Unwrap() error { return ErrSelectionRequired }

// ConversionError records where a conversion flow stopped.
type ConversionError struct {
	State State   // last state entered before failing
	Trace []State // states visited, ending in StateFailed
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed in %s: %v", e.State, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
