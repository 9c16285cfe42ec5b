package ratelimit

import (
	"context"
	"time"
)

// Policy allows Limit requests per key within any Window-long interval.
type Policy struct {
	Limit  int
	Window time.Duration
}

type Decision struct {
	Allowed   bool
	Remaining int
	// RetryAfter is how long until the oldest counted request leaves the window.
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
	Reset(ctx context.Context, key string) error
}
