package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocai/blog-admin/internal/domain/entity"
	"github.com/stocai/blog-admin/internal/infrastructure/cache"
	"github.com/stocai/blog-admin/internal/infrastructure/logger"
	"github.com/stocai/blog-admin/internal/infrastructure/session"
	"github.com/stocai/blog-admin/internal/infrastructure/upstream"
	"github.com/stocai/blog-admin/internal/usecase"
)

func newDataService(t *testing.T, handler http.Handler) (*usecase.DataService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := session.NewMemoryStore()
	require.NoError(t, sessions.Set("tok"))
	httpc := &http.Client{}
	client := upstream.NewClient(srv.URL, httpc, sessions, upstream.NewBearerTransport(srv.URL, httpc), logger.NewStdLogger())
	return usecase.NewDataService(client, cache.NewMemoryStore(), logger.NewStdLogger(), time.Minute), srv
}

func TestFetchServesFromCacheWithinWindow(t *testing.T) {
	var gets int32
	svc, _ := newDataService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&gets, 1)
		json.NewEncoder(w).Encode([]entity.Blog{{ID: 1, Title: "one"}})
	}))

	ctx := context.Background()
	first, err := usecase.Fetch[[]entity.Blog](ctx, svc, "blogs", "/blogs/", nil)
	require.NoError(t, err)
	second, err := usecase.Fetch[[]entity.Blog](ctx, svc, "blogs", "/blogs/", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&gets), "second read must come from cache")
}

func TestFetchDeduplicatesConcurrentReads(t *testing.T) {
	var gets int32
	release := make(chan struct{})
	svc, _ := newDataService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&gets, 1)
		<-release
		json.NewEncoder(w).Encode([]entity.Blog{{ID: 1, Title: "one"}})
	}))

	ctx := context.Background()
	var wg sync.WaitGroup
	results := make([][]entity.Blog, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = usecase.Fetch[[]entity.Blog](ctx, svc, "blogs", "/blogs/", nil)
		}(i)
	}
	// Let both goroutines reach the in-flight read before it resolves.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, results[0], results[1], "both callers must see the same resolved value")
	assert.Equal(t, int32(1), atomic.LoadInt32(&gets), "identical concurrent reads must share one upstream call")
}

func TestDeleteInvalidatesCachedReads(t *testing.T) {
	var mu sync.Mutex
	blogs := []entity.Blog{{ID: 1, Title: "one"}}
	var gets int32
	svc, _ := newDataService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			atomic.AddInt32(&gets, 1)
			json.NewEncoder(w).Encode(blogs)
		case http.MethodDelete:
			require.Equal(t, "/blogs/1/", r.URL.Path)
			blogs = nil
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	ctx := context.Background()
	got, err := usecase.Fetch[[]entity.Blog](ctx, svc, "blogs", "/blogs/", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, svc.Delete(ctx, "/blogs/", 1, "blogs"))

	got, err = usecase.Fetch[[]entity.Blog](ctx, svc, "blogs", "/blogs/", nil)
	require.NoError(t, err)
	assert.Empty(t, got, "read after delete must refetch, not serve the stale array")
	assert.Equal(t, int32(2), atomic.LoadInt32(&gets))
}

func TestCreateReturnsResourceAndInvalidates(t *testing.T) {
	var gets int32
	svc, _ := newDataService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			atomic.AddInt32(&gets, 1)
			json.NewEncoder(w).Encode([]entity.Blog{})
		case http.MethodPost:
			var draft entity.BlogDraft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(entity.Blog{ID: 7, Title: draft.Title, Slug: draft.Slug})
		}
	}))

	ctx := context.Background()
	_, err := usecase.Fetch[[]entity.Blog](ctx, svc, "blogs", "/blogs/", nil)
	require.NoError(t, err)

	created, err := usecase.Create[entity.Blog](ctx, svc, "/blogs/", "blogs", entity.BlogDraft{Title: "New", Slug: "new"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)

	_, err = usecase.Fetch[[]entity.Blog](ctx, svc, "blogs", "/blogs/", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&gets), "create must invalidate the list key")
}

func TestUpdateTargetsDetailPath(t *testing.T) {
	svc, _ := newDataService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/stories/2/", r.URL.Path)
		var payload map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		json.NewEncoder(w).Encode(entity.Story{ID: 2, AllowPublish: payload["allow_publish"]})
	}))

	story, err := usecase.Update[entity.Story](context.Background(), svc, "/stories/", 2, "stories", map[string]bool{"allow_publish": true})
	require.NoError(t, err)
	assert.True(t, story.AllowPublish)
}

func TestFetchDecodesPaginatedEnvelope(t *testing.T) {
	svc, _ := newDataService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":2,"next":null,"previous":null,"results":[{"id":1},{"id":2}]}`))
	}))

	blogs, err := usecase.Fetch[[]entity.Blog](context.Background(), svc, "blogs", "/blogs/", nil)
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
}

func TestFetchSurfacesNormalizedError(t *testing.T) {
	svc, _ := newDataService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Bad filter"}`))
	}))

	_, err := usecase.Fetch[[]entity.Blog](context.Background(), svc, "blogs", "/blogs/", nil)
	require.Error(t, err)
	apiErr := entity.AsAPIError(err)
	assert.Equal(t, "Bad filter", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestCacheKeyFoldsParams(t *testing.T) {
	assert.Equal(t, "comments", usecase.CacheKey("comments", nil))

	params := map[string][]string{"blog": {"3"}}
	assert.Equal(t, "comments:blog=3", usecase.CacheKey("comments", params))
	assert.Equal(t, "blogs:4", usecase.DetailKey("blogs", 4))
}
