package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight data domain.
var (
	// ErrInvalidIATACode indicates an airport code that is not three letters.
	ErrInvalidIATACode = errors.New("Invalid IATA code") //nolint:staticcheck // matched verbatim by the error handler

	// ErrInvalidRequest indicates a request rejected before reaching the provider.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstream indicates the flight data provider failed to answer.
	ErrUpstream = errors.New("upstream request failed")
)

// ValidationError represents a client input problem detected locally.
// The error handler maps it to 400 Bad Request.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap allows errors.Is(err, ErrInvalidRequest).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// UpstreamError wraps a failed call to the flight data provider.
type UpstreamError struct {
	// Operation is the provider operation that failed (e.g., "airports.info")
	Operation string

	// StatusCode is the provider HTTP status, 0 when no response was received
	StatusCode int

	// Err is the underlying cause
	Err error
}

// NewUpstreamError creates an UpstreamError for a failed provider operation.
func NewUpstreamError(operation string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
	}
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: provider returned status %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}

// InvalidIATACodeError reports a malformed airport code.
func InvalidIATACodeError(code string) error {
	return fmt.Errorf("%w: %q", ErrInvalidIATACode, code)
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidIATACode reports whether err is caused by a malformed airport code.
func IsInvalidIATACode(err error) bool {
	return errors.Is(err, ErrInvalidIATACode)
}

// IsUpstream reports whether err came from the flight data provider.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}
