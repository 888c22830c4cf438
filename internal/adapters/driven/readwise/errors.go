package readwise

import (
	"errors"
	"fmt"
	"time"
)

// Readwise-specific errors.
var (
	// ErrInvalidCursor indicates the server returned an unusable page cursor.
	ErrInvalidCursor = errors.New("readwise: invalid page cursor")
)

// RateLimitError represents a rate limit rejection with retry delay.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("readwise: rate limit exceeded, retry after %s", e.RetryAfter)
}

// APIError represents a Readwise API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("readwise: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}
