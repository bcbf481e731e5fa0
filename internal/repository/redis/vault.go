// Package redis implements the session vault on top of a Redis key.
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "user"

// Vault stores the serialized session under a single Redis key. It is the
// production implementation of domain.SessionVault.
type Vault struct {
	client *redis.Client
	key    string
}

// NewVault creates a Redis-backed vault. An empty key falls back to "user",
// the slot name the storefront has always used.
func NewVault(client *redis.Client, key string) *Vault {
	if key == "" {
		key = defaultKey
	}
	return &Vault{client: client, key: key}
}

func (v *Vault) Load(ctx context.Context) (string, bool, error) {
	val, err := v.client.Get(ctx, v.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (v *Vault) Save(ctx context.Context, value string) error {
	// No TTL: the slot lives until an explicit logout clears it.
	return v.client.Set(ctx, v.key, value, 0).Err()
}

func (v *Vault) Clear(ctx context.Context) error {
	return v.client.Del(ctx, v.key).Err()
}
