package memory

import (
	"context"
	"sync"
	"time"

	"wallet-identity/internal/core/ports"

	"golang.org/x/time/rate"
)

// RateLimiter implements ports.RateLimitStore with one token bucket per key.
// A bucket refills limit tokens per window and bursts up to limit.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	now      func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		now:      time.Now,
	}
}

func (l *RateLimiter) Allow(_ context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(window/time.Duration(max(limit, 1))), int(limit))
		l.limiters[key] = lim
	}
	l.mu.Unlock()

	now := l.now()
	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)
	remaining := int64(tokens)
	if remaining < 0 {
		remaining = 0
	}

	resetIn := time.Duration(0)
	if tokens < 1 {
		resetIn = time.Duration((1 - tokens) / float64(lim.Limit()) * float64(time.Second))
	}
	return &ports.RateLimitResult{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(resetIn).Unix(),
	}, nil
}
