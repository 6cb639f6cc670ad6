package cache

import (
	"context"

	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports"

	"github.com/rs/zerolog"
)

// Tiered reads through a local cache to a shared one and fills the local
// tier on shared hits. Shared-tier failures degrade to a miss.
type Tiered struct {
	local  ports.DecryptionCache
	shared ports.DecryptionCache
	log    zerolog.Logger
}

// NewTiered layers local over shared.
func NewTiered(local, shared ports.DecryptionCache, log zerolog.Logger) *Tiered {
	return &Tiered{local: local, shared: shared, log: log}
}

func (c *Tiered) Get(ctx context.Context, key string) (*domain.DecryptedComment, error) {
	if value, err := c.local.Get(ctx, key); err != nil || value != nil {
		return value, err
	}
	value, err := c.shared.Get(ctx, key)
	if err != nil {
		c.log.Warn().Err(err).Msg("shared decryption cache unavailable")
		return nil, nil
	}
	if value != nil {
		_ = c.local.Set(ctx, key, *value)
	}
	return value, nil
}

func (c *Tiered) Set(ctx context.Context, key string, value domain.DecryptedComment) error {
	if err := c.local.Set(ctx, key, value); err != nil {
		return err
	}
	if err := c.shared.Set(ctx, key, value); err != nil {
		c.log.Warn().Err(err).Msg("could not write shared decryption cache")
	}
	return nil
}
