package ratelimit

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter counts requests in Redis so the limit holds across
// replicas. Each key gets an INCR per request; the first increment in a
// window arms the expiry.
type RedisLimiter struct {
	client rueidis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisLimiter(client rueidis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.prefix + key

	count, err := l.client.Do(
		ctx,
		l.client.B().Incr().Key(redisKey).Build(),
	).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := l.client.Do(
			ctx,
			l.client.B().Expire().Key(redisKey).Seconds(int64(l.window.Seconds())).Build(),
		).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}
