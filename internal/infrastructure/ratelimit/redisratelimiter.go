package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts requests in sliding windows held as Redis sorted
// sets, one set per key and window length. A request is denied as soon as
// any configured window is full.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error) {
	now := time.Now()

	windows := []struct {
		span  time.Duration
		limit int
	}{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	}

	for _, w := range windows {
		if w.limit <= 0 {
			continue
		}

		count, err := l.countAndRecord(ctx, key, w.span, now)
		if err != nil {
			return false, err
		}
		if count >= int64(w.limit) {
			return false, nil
		}
	}

	return true, nil
}

// countAndRecord drops entries older than the window, records the current
// request and returns how many requests were already inside the window.
func (l *RedisRateLimiter) countAndRecord(ctx context.Context, key string, span time.Duration, now time.Time) (int64, error) {
	redisKey := "ratelimit:" + key + ":" + span.String()
	cutoff := now.Add(-span).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(cutoff, 10))
	inWindow := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, redisKey, span+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit check failed: %w", err)
	}

	return inWindow.Val(), nil
}
