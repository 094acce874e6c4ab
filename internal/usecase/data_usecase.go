package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/stocai/blog-admin/internal/domain/contract"
	"github.com/stocai/blog-admin/internal/domain/entity"
	"github.com/stocai/blog-admin/internal/infrastructure/metrics"
	"github.com/stocai/blog-admin/internal/infrastructure/upstream"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// DefaultStaleTime is the freshness window applied when none is configured.
const DefaultStaleTime = 5 * time.Minute

// DataService is the generic data-access layer: cached reads keyed by
// resource plus parameters, and mutations that invalidate the affected
// key prefix. Identical concurrent reads collapse into one upstream call.
type DataService struct {
	client    *upstream.Client
	cache     contract.ICache
	logger    usecasecontract.IAppLogger
	staleTime time.Duration
	group     singleflight.Group
}

// NewDataService creates the data-access layer over the upstream client
// and a cache backend.
func NewDataService(client *upstream.Client, cache contract.ICache, logger usecasecontract.IAppLogger, staleTime time.Duration) *DataService {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	return &DataService{
		client:    client,
		cache:     cache,
		logger:    logger,
		staleTime: staleTime,
	}
}

// CacheKey builds the structured key for a read: the resource name with
// canonicalized query parameters folded in, so distinct parameter sets
// cache independently and share the resource prefix for invalidation.
func CacheKey(resource string, params url.Values) string {
	if len(params) == 0 {
		return resource
	}
	return resource + ":" + params.Encode()
}

// DetailKey builds the key for a single resource instance.
func DetailKey(resource string, id int64) string {
	return fmt.Sprintf("%s:%d", resource, id)
}

// Invalidate drops every cache entry under the given resource prefix so
// dependent reads refetch.
func (d *DataService) Invalidate(ctx context.Context, prefix string) {
	if err := d.cache.InvalidatePrefix(ctx, prefix); err != nil {
		d.logger.Warnf("cache invalidation for %q failed: %v", prefix, err)
	}
}

// Fetch reads a resource through the cache. A fresh entry is served
// without a network call; otherwise one upstream GET is issued, shared by
// all concurrent callers of the same key, and its payload cached for the
// freshness window.
func Fetch[T any](ctx context.Context, d *DataService, key, path string, params url.Values) (T, error) {
	var zero T
	if raw, found, err := d.cache.Get(ctx, key); err == nil && found {
		metrics.IncCacheHit()
		return decodePayload[T](raw)
	} else if err != nil {
		d.logger.Warnf("cache read for %q failed: %v", key, err)
	}
	metrics.IncCacheMiss()

	v, err, _ := d.group.Do(key, func() (interface{}, error) {
		var raw json.RawMessage
		if err := d.client.Do(ctx, http.MethodGet, path, params, nil, &raw); err != nil {
			return nil, err
		}
		if err := d.cache.Set(ctx, key, raw, d.staleTime); err != nil {
			d.logger.Warnf("cache write for %q failed: %v", key, err)
		}
		return []byte(raw), nil
	})
	if err != nil {
		return zero, entity.AsAPIError(err)
	}
	return decodePayload[T](v.([]byte))
}

// Create POSTs a payload and invalidates the given key prefix on success,
// returning the created resource.
func Create[T any](ctx context.Context, d *DataService, path, invalidateKey string, payload any) (T, error) {
	var out T
	var raw json.RawMessage
	if err := d.client.Do(ctx, http.MethodPost, path, nil, payload, &raw); err != nil {
		return out, entity.AsAPIError(err)
	}
	d.Invalidate(ctx, invalidateKey)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return out, entity.NewAPIError(err.Error(), 0)
		}
	}
	return out, nil
}

// Update PUTs a payload to {path}{id}/ and invalidates the given key
// prefix on success. path must end with a slash, matching the upstream's
// URL shape.
func Update[T any](ctx context.Context, d *DataService, path string, id int64, invalidateKey string, payload any) (T, error) {
	var out T
	var raw json.RawMessage
	if err := d.client.Do(ctx, http.MethodPut, fmt.Sprintf("%s%d/", path, id), nil, payload, &raw); err != nil {
		return out, entity.AsAPIError(err)
	}
	d.Invalidate(ctx, invalidateKey)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return out, entity.NewAPIError(err.Error(), 0)
		}
	}
	return out, nil
}

// Delete removes {path}{id}/ and invalidates the given key prefix.
func (d *DataService) Delete(ctx context.Context, path string, id int64, invalidateKey string) error {
	if err := d.client.Do(ctx, http.MethodDelete, fmt.Sprintf("%s%d/", path, id), nil, nil, nil); err != nil {
		return entity.AsAPIError(err)
	}
	d.Invalidate(ctx, invalidateKey)
	return nil
}

// decodePayload unmarshals a cached or fetched payload. List endpoints
// may answer either a bare array or the paginated envelope; both shapes
// decode to the same slice.
func decodePayload[T any](raw []byte) (T, error) {
	var out T
	directErr := json.Unmarshal(raw, &out)
	if directErr == nil {
		return out, nil
	}
	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
		var fromEnvelope T
		if err := json.Unmarshal(envelope.Results, &fromEnvelope); err == nil {
			return fromEnvelope, nil
		}
	}
	var zero T
	return zero, entity.NewAPIError(directErr.Error(), 0)
}
