package contract

import (
	"context"
	"time"
)

// ICache defines the read-cache operations for upstream payloads. Values
// are raw JSON; an entry older than its TTL is reported as absent so the
// caller refetches.
type ICache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// InvalidatePrefix removes the entry stored under prefix itself and
	// every entry whose key extends it with a ":" segment.
	InvalidatePrefix(ctx context.Context, prefix string) error
}
