package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the booking pipeline.
var (
	// ErrInvalidRequest indicates the caller supplied invalid search or booking input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamUnavailable indicates the upstream flight API could not serve the request.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamTimeout indicates the upstream flight API did not respond in time.
	ErrUpstreamTimeout = errors.New("upstream timeout")

	// ErrBookingNotFound indicates no stored booking matches the given reference.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSearchSuperseded indicates a newer search was started before this one resolved.
	ErrSearchSuperseded = errors.New("search superseded by a newer request")

	// ErrIncompleteTraveler indicates a traveler record is missing required fields.
	ErrIncompleteTraveler = errors.New("incomplete traveler record")
)

// UpstreamError wraps an error from the upstream flight API with operation context.
type UpstreamError struct {
	// Operation is the upstream call that failed (e.g., "flights/search")
	Operation string

	// StatusCode is the HTTP status returned upstream, 0 for transport failures
	StatusCode int

	// Retryable indicates whether the caller may retry the operation
	Retryable bool

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream %s failed with status %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a non-retryable UpstreamError.
func NewUpstreamError(operation string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
	}
}

// NewRetryableUpstreamError creates an UpstreamError the caller may retry.
// Use for transport failures, 5xx responses, and rate limiting.
func NewRetryableUpstreamError(operation string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Operation:  operation,
		StatusCode: statusCode,
		Retryable:  true,
		Err:        err,
	}
}

// IsRetryable reports whether err is an upstream error marked retryable.
func IsRetryable(err error) bool {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Retryable
	}
	return false
}
