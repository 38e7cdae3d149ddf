package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// WalletCache implements ports.WalletCache using Redis. It holds short-lived
// computed wallet data (snapshots, activity lists) so bursts of dashboard
// requests for the same address do not hammer the chain endpoints.
type WalletCache struct {
	client *goredis.Client
	prefix string
}

// NewWalletCache creates a new Redis-backed wallet data cache.
func NewWalletCache(client *goredis.Client) *WalletCache {
	return &WalletCache{
		client: client,
		prefix: "walletdata:",
	}
}

// Get retrieves a cached entry. Returns nil, nil if the key does not exist.
func (c *WalletCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis wallet cache get: %w", err)
	}
	return val, nil
}

// Set stores an entry with TTL.
func (c *WalletCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis wallet cache set: %w", err)
	}
	return nil
}
