// Package cache holds the in-process decryption cache and its tiering over a
// shared store.
package cache

import (
	"context"
	"time"

	"wallet-identity/internal/core/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRU is a bounded in-process ports.DecryptionCache. Entries expire after ttl;
// a zero ttl keeps them until evicted.
type LRU struct {
	entries *expirable.LRU[string, domain.DecryptedComment]
}

// NewLRU creates an LRU holding at most size entries.
func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = 1
	}
	return &LRU{entries: expirable.NewLRU[string, domain.DecryptedComment](size, nil, ttl)}
}

func (c *LRU) Get(_ context.Context, key string) (*domain.DecryptedComment, error) {
	value, ok := c.entries.Get(key)
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (c *LRU) Set(_ context.Context, key string, value domain.DecryptedComment) error {
	c.entries.Add(key, value)
	return nil
}

// Len reports the number of live entries.
func (c *LRU) Len() int {
	return c.entries.Len()
}
