package itinerary

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// timeoutError implements net.Error's timeout contract for tests.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestNewNetworkErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
	}{
		{"plain error", errors.New("connection refused"), ErrTypeNetwork},
		{"timeout error", timeoutError{}, ErrTypeTimeout},
		{"wrapped timeout", fmt.Errorf("request failed: %w", timeoutError{}), ErrTypeTimeout},
		{"nil cause", nil, ErrTypeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcErr := NewNetworkError("request failed", tt.err)
			if svcErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", svcErr.Type, tt.wantType)
			}
			if !svcErr.Retryable {
				t.Error("network errors should be retryable")
			}
		})
	}
}

func TestNewHTTPErrorRetryable(t *testing.T) {
	tests := []struct {
		statusCode    int
		wantRetryable bool
	}{
		{400, false},
		{404, false},
		{429, false},
		{500, true},
		{502, true},
		{503, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.statusCode), func(t *testing.T) {
			svcErr := NewHTTPError(tt.statusCode, "request failed")
			if svcErr.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", svcErr.Retryable, tt.wantRetryable)
			}
			if svcErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", svcErr.StatusCode, tt.statusCode)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	netErr := NewNetworkError("unreachable", errors.New("connection refused"))
	timeoutErr := NewNetworkError("slow", timeoutError{})
	httpErr := NewHTTPError(503, "overloaded")
	parseErr := NewParseError("bad body", nil)
	plainErr := errors.New("something else")

	if !IsNetworkError(netErr) || !IsNetworkError(timeoutErr) {
		t.Error("IsNetworkError should match network and timeout errors")
	}
	if IsNetworkError(httpErr) || IsNetworkError(plainErr) {
		t.Error("IsNetworkError should not match HTTP or plain errors")
	}

	if !IsHTTPError(httpErr) {
		t.Error("IsHTTPError should match HTTP errors")
	}
	if IsHTTPError(netErr) {
		t.Error("IsHTTPError should not match network errors")
	}

	if !IsRetryable(netErr) || !IsRetryable(httpErr) {
		t.Error("network errors and 5xx should be retryable")
	}
	if IsRetryable(parseErr) || IsRetryable(plainErr) {
		t.Error("parse and plain errors should not be retryable")
	}

	// Predicates see through wrapping
	wrapped := fmt.Errorf("generate: %w", httpErr)
	if !IsHTTPError(wrapped) || !IsRetryable(wrapped) {
		t.Error("predicates should unwrap error chains")
	}
}

func TestServiceErrorMessage(t *testing.T) {
	withCause := NewNetworkError("request failed", errors.New("connection refused"))
	if !strings.Contains(withCause.Error(), "connection refused") {
		t.Errorf("Error() should include the cause, got %q", withCause.Error())
	}

	withoutCause := NewHTTPError(500, "server exploded")
	if !strings.Contains(withoutCause.Error(), "server exploded") {
		t.Errorf("Error() should include the message, got %q", withoutCause.Error())
	}

	if !errors.Is(withCause, withCause.Err) {
		t.Error("Unwrap should expose the underlying error")
	}
}

func TestShortMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "timeout",
			err:  NewNetworkError("slow", timeoutError{}),
			want: "did not respond in time",
		},
		{
			name: "network",
			err:  NewNetworkError("down", errors.New("connection refused")),
			want: "check your connection",
		},
		{
			name: "http",
			err:  NewHTTPError(502, "bad gateway"),
			want: "HTTP 502",
		},
		{
			name: "parse",
			err:  NewParseError("garbage", nil),
			want: "unreadable response",
		},
		{
			name: "plain error passes through",
			err:  errors.New("disk full"),
			want: "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortMessage(tt.err); !strings.Contains(got, tt.want) {
				t.Errorf("ShortMessage() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
