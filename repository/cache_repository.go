package repository

import (
	"context"
	"time"
)

// CacheRepository is a string key/value store with per-key expiry.
// A zero ttl means the key never expires.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	// Exists reports store failures instead of treating them as a miss.
	Exists(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
