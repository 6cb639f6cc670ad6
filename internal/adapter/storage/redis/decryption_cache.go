package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-identity/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DecryptionCache implements ports.DecryptionCache in Redis so decrypted
// comments are shared between replicas. Keys are hashed because they embed
// whole ciphertexts.
type DecryptionCache struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewDecryptionCache creates a Redis-backed decryption cache.
func NewDecryptionCache(client goredis.UniversalClient, ttl time.Duration) *DecryptionCache {
	return &DecryptionCache{
		client: client,
		prefix: "comment:",
		ttl:    ttl,
	}
}

func (c *DecryptionCache) key(key string) string {
	sum := sha256.Sum256([]byte(key))
	return c.prefix + hex.EncodeToString(sum[:])
}

// Get returns nil, nil on a miss.
func (c *DecryptionCache) Get(ctx context.Context, key string) (*domain.DecryptedComment, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis comment get: %w", err)
	}
	var value domain.DecryptedComment
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("decoding cached comment: %w", err)
	}
	return &value, nil
}

// Set stores a decrypt result with the configured TTL.
func (c *DecryptionCache) Set(ctx context.Context, key string, value domain.DecryptedComment) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding comment: %w", err)
	}
	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis comment set: %w", err)
	}
	return nil
}
