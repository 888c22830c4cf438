package readwise

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ReadwiseRateLimit is the documented request budget (240/minute).
	ReadwiseRateLimit = 240

	// ProactiveRate is the proactive throttle rate (~2 req/sec = 120/min).
	ProactiveRate = 2.0

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// DefaultRetryAfter is used when a 429 carries no Retry-After header.
	DefaultRetryAfter = 60 * time.Second
)

// RateLimiter throttles export requests below the documented budget and
// backs off when the API rejects a request with 429.
type RateLimiter struct {
	mu         sync.Mutex
	retryAfter time.Time     // From a 429 response
	bucket     *rate.Limiter // Proactive throttling
}

// NewRateLimiter creates a new rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), 5),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	retryAfter := r.retryAfter
	r.mu.Unlock()

	if time.Now().Before(retryAfter) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAfter)):
		}
	}

	return nil
}

// UpdateFromResponse records the backoff window from a 429 response.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return
	}

	delay := DefaultRetryAfter
	if header := resp.Header.Get(HeaderRetryAfter); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
			delay = time.Duration(seconds) * time.Second
		}
	}

	r.mu.Lock()
	r.retryAfter = time.Now().Add(delay)
	r.mu.Unlock()
}

// RetryDelay returns the Retry-After duration from a 429 response.
func RetryDelay(resp *http.Response) time.Duration {
	delay := DefaultRetryAfter
	if header := resp.Header.Get(HeaderRetryAfter); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
			delay = time.Duration(seconds) * time.Second
		}
	}
	return delay
}
