package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter keeps a sliding window of request timestamps per key in a
// sorted set.
type RedisRateLimiter struct {
	client *redis.Client
	policy Policy
	prefix string
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, policy Policy) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		policy: policy,
		prefix: "forestdash:ratelimit",
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.policy.Limit <= 0 {
		return Decision{Allowed: true}, nil
	}

	now := l.now()
	redisKey := l.getKey(key)
	windowStart := now.Add(-l.policy.Window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	oldest := pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, l.policy.Window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	count := int(zcard.Val())
	if count < l.policy.Limit {
		return Decision{Allowed: true, Remaining: l.policy.Limit - count - 1}, nil
	}

	// The rejected request is not counted.
	if err := l.client.ZRem(ctx, redisKey, nowNano).Err(); err != nil {
		return Decision{}, fmt.Errorf("failed to discard rejected request: %w", err)
	}

	retryAfter := l.policy.Window
	if entries := oldest.Val(); len(entries) > 0 {
		oldestAt := time.Unix(0, int64(entries[0].Score))
		retryAfter = oldestAt.Add(l.policy.Window).Sub(now)
	}

	return Decision{Allowed: false, RetryAfter: retryAfter}, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit for %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("%s:%s", l.prefix, identifier)
}
