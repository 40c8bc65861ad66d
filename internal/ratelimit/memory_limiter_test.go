package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_Window(t *testing.T) {
	limiter := NewMemoryLimiter(3, 50*time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("allow failed: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if allowed, _ := limiter.Allow(ctx, "1.2.3.4"); allowed {
		t.Error("request over the limit should be rejected")
	}

	// A different client has its own bucket.
	if allowed, _ := limiter.Allow(ctx, "5.6.7.8"); !allowed {
		t.Error("another client should not be throttled")
	}

	time.Sleep(60 * time.Millisecond)

	if allowed, _ := limiter.Allow(ctx, "1.2.3.4"); !allowed {
		t.Error("expected a fresh window after expiry")
	}
}
