package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrNotFound indicates the requested list endpoint does not exist
	ErrNotFound = errors.New("tmdb resource not found")
	// ErrUnauthorized indicates a missing, invalid or forbidden access token
	ErrUnauthorized = errors.New("tmdb authorization failed")
	// ErrRateLimited indicates TMDB answered with 429 Too Many Requests
	ErrRateLimited = errors.New("tmdb rate limit exceeded")
	// ErrNetwork indicates a transport failure or any other non-success status
	ErrNetwork = errors.New("network/API error")
)

// APIError represents a non-success response from the TMDB API
type APIError struct {
	StatusCode int
	Endpoint   Endpoint
	// Message and Code are TMDB's status_message and status_code when the
	// body carried them
	Message    string
	Code       int
	RetryAfter string
}

// Error implements the error interface
func (e *APIError) Error() string {
	switch {
	case e.IsNotFound():
		return fmt.Sprintf("tmdb resource for '%s' not found", e.Endpoint)
	case e.IsUnauthorized():
		return fmt.Sprintf("tmdb authorization failed (status %d): check your access token", e.StatusCode)
	case e.IsRateLimited():
		if e.RetryAfter != "" {
			return fmt.Sprintf("tmdb rate limit exceeded: retry after %s", e.RetryAfter)
		}
		return "tmdb rate limit exceeded"
	}

	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if msg == "" {
		return fmt.Sprintf("network/API error: status %d", e.StatusCode)
	}
	if e.Code != 0 {
		return fmt.Sprintf("network/API error: status %d: %s (tmdb code %d)", e.StatusCode, msg, e.Code)
	}
	return fmt.Sprintf("network/API error: status %d: %s", e.StatusCode, msg)
}

// Unwrap maps the status code onto one of the package sentinels so callers
// can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.IsNotFound():
		return ErrNotFound
	case e.IsUnauthorized():
		return ErrUnauthorized
	case e.IsRateLimited():
		return ErrRateLimited
	default:
		return ErrNetwork
	}
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error indicates TMDB throttled the request
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// newAPIError classifies a non-2xx response.
func newAPIError(endpoint Endpoint, resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Endpoint:   endpoint,
		RetryAfter: resp.Header.Get("Retry-After"),
	}

	if status, ok := decodeStatus(body); ok {
		apiErr.Message = status.Message
		apiErr.Code = status.Code
	}

	return apiErr
}
