package itinerary

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeHTTP indicates an HTTP-level error (non-2xx status code)
	ErrTypeHTTP
	// ErrTypeParse indicates a parsing error (malformed JSON, invalid response)
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ServiceError represents an error that occurred while talking to the
// itinerary generation service.
type ServiceError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
	Retryable  bool      // Whether the request may be retried
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a network-level error with timeout classification
func NewNetworkError(message string, err error) *ServiceError {
	if isTimeout(err) {
		return &ServiceError{
			Type:      ErrTypeTimeout,
			Message:   message,
			Err:       err,
			Retryable: true,
		}
	}
	return &ServiceError{
		Type:      ErrTypeNetwork,
		Message:   message,
		Err:       err,
		Retryable: true,
	}
}

// isTimeout reports whether err represents a timed-out request.
func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if os.IsTimeout(err) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string) *ServiceError {
	return &ServiceError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
		Retryable:  statusCode >= 500, // Server errors are retryable
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *ServiceError {
	return &ServiceError{
		Type:      ErrTypeParse,
		Message:   message,
		Err:       err,
		Retryable: false,
	}
}

// IsNetworkError checks if an error is a network error (including timeouts)
func IsNetworkError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Type == ErrTypeNetwork || svcErr.Type == ErrTypeTimeout
	}
	return false
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Type == ErrTypeHTTP
	}
	return false
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Retryable
	}
	// Unknown errors are not retryable by default
	return false
}

// ShortMessage returns a concise, user-friendly message suitable for a
// notification banner.
func ShortMessage(err error) string {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return err.Error()
	}

	switch svcErr.Type {
	case ErrTypeTimeout:
		return "The planning service did not respond in time"
	case ErrTypeNetwork:
		return "Could not reach the planning service - check your connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("The planning service returned an error (HTTP %d)", svcErr.StatusCode)
	case ErrTypeParse:
		return "The planning service returned an unreadable response"
	default:
		return svcErr.Message
	}
}
