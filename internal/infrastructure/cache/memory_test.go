package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, found, err := store.Get(ctx, "blogs")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "blogs", []byte(`[{"id":1}]`), time.Minute))
	got, found, err := store.Get(ctx, "blogs")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":1}]`), got)
}

func TestMemoryStoreStaleness(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Set(ctx, "blogs", []byte(`[]`), 5*time.Minute))

	current = current.Add(4 * time.Minute)
	_, found, err := store.Get(ctx, "blogs")
	require.NoError(t, err)
	assert.True(t, found, "entry inside the freshness window should be served")

	current = current.Add(2 * time.Minute)
	_, found, err = store.Get(ctx, "blogs")
	require.NoError(t, err)
	assert.False(t, found, "entry past the freshness window should be absent")
}

func TestMemoryStoreInvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "blogs", []byte(`a`), time.Minute))
	require.NoError(t, store.Set(ctx, "blogs:3", []byte(`b`), time.Minute))
	require.NoError(t, store.Set(ctx, "blogs:blog=2", []byte(`c`), time.Minute))
	require.NoError(t, store.Set(ctx, "stories", []byte(`d`), time.Minute))

	require.NoError(t, store.InvalidatePrefix(ctx, "blogs"))

	for _, key := range []string{"blogs", "blogs:3", "blogs:blog=2"} {
		_, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found, "key %q should be invalidated", key)
	}

	_, found, err := store.Get(ctx, "stories")
	require.NoError(t, err)
	assert.True(t, found, "unrelated keys must survive invalidation")
}
