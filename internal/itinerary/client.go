package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/metaversecode/AI-Trip-Planner/internal/logging"
	"github.com/metaversecode/AI-Trip-Planner/internal/trip"
)

const (
	// DefaultTimeout is the default HTTP request timeout. Generation can take
	// a while, so this is deliberately generous.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for failed requests
	DefaultMaxRetries = 2

	// DefaultRetryDelay is the default delay between retry attempts
	DefaultRetryDelay = 1 * time.Second

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 15 * time.Second

	// generatePath is the service endpoint for itinerary generation
	generatePath = "/generate"
)

// Client is an HTTP client for the itinerary generation service.
type Client struct {
	// BaseURL is the base URL for the service (e.g., "https://api.example.com")
	BaseURL string

	// APIKey is sent as a bearer token when non-empty
	APIKey string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts
	RetryDelay time.Duration

	// MaxRetryDelay is the maximum delay for exponential backoff
	MaxRetryDelay time.Duration

	// UseExponentialBackoff enables exponential backoff for retries
	UseExponentialBackoff bool
}

// NewClient creates a new generation service client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:               strings.TrimRight(baseURL, "/"),
		HTTPClient:            &http.Client{Timeout: DefaultTimeout},
		MaxRetries:            DefaultMaxRetries,
		RetryDelay:            DefaultRetryDelay,
		MaxRetryDelay:         DefaultMaxRetryDelay,
		UseExponentialBackoff: true,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetRetry configures retry behavior
func (c *Client) SetRetry(maxRetries int, retryDelay time.Duration) {
	c.MaxRetries = maxRetries
	c.RetryDelay = retryDelay
}

// Generate submits the full preferences record to the generation service and
// returns the itinerary text. Retryable failures (network errors, 5xx) are
// retried with backoff up to MaxRetries; 4xx responses and parse failures are
// returned immediately. The context bounds the whole call including retries.
func (c *Client) Generate(ctx context.Context, prefs trip.Preferences) (string, error) {
	var lastErr error
	currentDelay := c.RetryDelay

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(currentDelay):
			case <-ctx.Done():
				return "", NewNetworkError("generation cancelled", ctx.Err())
			}

			if c.UseExponentialBackoff {
				currentDelay *= 2
				if currentDelay > c.MaxRetryDelay {
					currentDelay = c.MaxRetryDelay
				}
			}
		}

		itinerary, err := c.generateAttempt(ctx, prefs)
		if err == nil {
			return itinerary, nil
		}

		lastErr = err

		// Don't retry non-retryable errors or a dead context
		if !IsRetryable(err) || ctx.Err() != nil {
			return "", err
		}
	}

	return "", lastErr
}

// generateAttempt performs a single generation request.
func (c *Client) generateAttempt(ctx context.Context, prefs trip.Preferences) (string, error) {
	payload, err := json.Marshal(NewGenerateRequest(prefs))
	if err != nil {
		return "", NewParseError("failed to encode request payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+generatePath, bytes.NewReader(payload))
	if err != nil {
		return "", NewNetworkError("failed to create generation request", err)
	}
	logging.Debug("POST", zap.String("url", req.URL.String()))

	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", NewNetworkError("generation request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read error response if available
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", NewHTTPError(resp.StatusCode,
			fmt.Sprintf("generation failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewNetworkError("failed to read response body", err)
	}

	var result GenerateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", NewParseError("failed to parse generation response", err)
	}

	if result.Itinerary == "" {
		return "", NewParseError("generation response contained no itinerary", nil)
	}

	return result.Itinerary, nil
}
