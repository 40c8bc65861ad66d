package ratelimit

import "context"

// Limiter answers whether a client identified by key may make another
// request inside the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
