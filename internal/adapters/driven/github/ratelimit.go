package github

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// unauthenticatedLimit is the unauthenticated hourly quota (60/hour).
	unauthenticatedLimit = 60

	// authenticatedLimit is the authenticated hourly quota (5000/hour).
	authenticatedLimit = 5000

	// proactiveRate is the proactive throttle rate in requests per second.
	// The check command makes at most two calls, so this only matters
	// when scripting repohome check in a loop.
	proactiveRate = 1.2

	// minBuffer is the minimum remaining requests before waiting for reset.
	minBuffer = 2
)

// rateLimiter combines proactive throttling with reactive API limit
// tracking fed from response headers.
type rateLimiter struct {
	mu        sync.Mutex
	remaining int
	resetTime time.Time
	bucket    *rate.Limiter
}

// newRateLimiter creates a rate limiter assuming a full quota.
func newRateLimiter(authenticated bool) *rateLimiter {
	quota := unauthenticatedLimit
	if authenticated {
		quota = authenticatedLimit
	}
	return &rateLimiter{
		remaining: quota,
		bucket:    rate.NewLimiter(rate.Limit(proactiveRate), 1),
	}
}

// wait blocks until it is safe to make a request.
func (r *rateLimiter) wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	remaining := r.remaining
	resetTime := r.resetTime
	r.mu.Unlock()

	if remaining < minBuffer && time.Now().Before(resetTime) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(resetTime)):
		}
	}

	return nil
}

// update records the quota state reported by an API response.
func (r *rateLimiter) update(remaining int, reset time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remaining = remaining
	r.resetTime = reset
}
