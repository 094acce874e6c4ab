package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/stocai/blog-admin/internal/domain/contract"
)

type memoryEntry struct {
	value     []byte
	fetchedAt time.Time
	ttl       time.Duration
}

// MemoryStore is the in-process cache backend used when no Redis is
// configured. Entries past their TTL are reported as absent and reaped
// lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if c.now().Sub(entry.fetchedAt) >= entry.ttl {
		delete(c.entries, key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (c *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{value: value, fetchedAt: c.now(), ttl: ttl}
	return nil
}

// InvalidatePrefix drops the entry stored under prefix itself and every
// entry in a ":"-separated segment below it.
func (c *MemoryStore) InvalidatePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key == prefix || strings.HasPrefix(key, prefix+":") {
			delete(c.entries, key)
		}
	}
	return nil
}

var _ contract.ICache = (*MemoryStore)(nil)
