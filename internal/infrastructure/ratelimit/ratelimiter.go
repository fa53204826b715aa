// Package ratelimit provides request rate limiting backed by Redis.
package ratelimit

import "context"

// RateLimitConfig configures the per-window request limits. A zero limit
// disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RateLimiter decides whether a request identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
}
