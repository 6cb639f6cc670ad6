package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Locker implements ports.Locker with SET NX leases.
type Locker struct {
	client goredis.UniversalClient
	prefix string
}

// NewLocker creates a Redis-backed lease store.
func NewLocker(client goredis.UniversalClient) *Locker {
	return &Locker{
		client: client,
		prefix: "lock:",
	}
}

// TryLock takes the lease if nobody holds it. It returns false, nil when the
// key is taken.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.prefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis lock: %w", err)
	}
	return ok, nil
}

// Unlock releases the lease early.
func (l *Locker) Unlock(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis unlock: %w", err)
	}
	return nil
}
