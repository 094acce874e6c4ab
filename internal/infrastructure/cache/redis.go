package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stocai/blog-admin/internal/domain/contract"
)

// RedisStore is the Redis cache backend, selected when REDIS_URL is set.
// Staleness is delegated to Redis TTLs; prefix invalidation walks the
// keyspace with SCAN so it never blocks the server.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an existing Redis client as a cache backend.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// NewRedisFromURL connects a Redis client from a redis:// URL, falling
// back to treating the value as a plain host:port address.
func NewRedisFromURL(ctx context.Context, redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL}
	}
	rdb := redis.NewClient(opts)
	_ = rdb.Ping(ctx).Err()
	return rdb
}

// Close closes the underlying Redis connection.
func Close(rdb *redis.Client) {
	_ = rdb.Close()
}

func (c *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *RedisStore) InvalidatePrefix(ctx context.Context, prefix string) error {
	if err := c.rdb.Del(ctx, prefix).Err(); err != nil && err != redis.Nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, prefix+":*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}

var _ contract.ICache = (*RedisStore)(nil)
