// Package redis provides a Redis-backed storage adapter for shared or
// long-lived deployments of the storefront state.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/trvanh/storefront/pkg/errors"
)

// Adapter implements storage.Adapter on a Redis client.
type Adapter struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Redis-backed adapter. A zero ttl means values never expire,
// which is the default for state that must survive across sessions.
func New(client *redis.Client, ttl time.Duration) *Adapter {
	return &Adapter{
		client: client,
		ttl:    ttl,
	}
}

// Load retrieves the blob stored under the key.
func (a *Adapter) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := a.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("state", key)
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Save stores the blob under the key with the configured TTL.
func (a *Adapter) Save(ctx context.Context, key string, value []byte) error {
	if err := a.client.Set(ctx, key, value, a.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity for readiness probes.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}
