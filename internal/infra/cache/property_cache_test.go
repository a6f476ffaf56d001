package cache

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"stayscape/config"
	"stayscape/internal/domain/entity"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMemcache struct {
	mu     sync.Mutex
	items  map[string]*memcache.Item
	getErr error
	sets   int
}

func newFakeMemcache() *fakeMemcache {
	return &fakeMemcache{items: make(map[string]*memcache.Item)}
}

func (f *fakeMemcache) Get(key string) (*memcache.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	item, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}

	return item, nil
}

func (f *fakeMemcache) Set(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sets++
	f.items[item.Key] = item

	return nil
}

func (f *fakeMemcache) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(f.items, key)

	return nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProperty() *entity.Property {
	return &entity.Property{ID: 3, Title: "Loft", Price: 120, Images: []string{"a.jpg"}}
}

func TestPropertyCache_LocalOnly(t *testing.T) {
	c := newPropertyCache(&config.CacheConfig{}, nil, newDiscardLogger())
	defer c.stop()
	ctx := context.Background()

	_, ok := c.Get(ctx, 3)
	assert.False(t, ok)

	c.Set(ctx, testProperty())
	got, ok := c.Get(ctx, 3)
	require.True(t, ok)
	assert.Equal(t, "Loft", got.Title)

	// Returned values are copies.
	got.Images[0] = "mutated.jpg"
	again, _ := c.Get(ctx, 3)
	assert.Equal(t, "a.jpg", again.Images[0])

	c.Invalidate(ctx, 3)
	_, ok = c.Get(ctx, 3)
	assert.False(t, ok)
}

func TestPropertyCache_RemoteRefillsLocal(t *testing.T) {
	remote := newFakeMemcache()
	c := newPropertyCache(&config.CacheConfig{MemcachedTTL: time.Minute}, remote, newDiscardLogger())
	defer c.stop()
	ctx := context.Background()

	data, err := json.Marshal(testProperty())
	require.NoError(t, err)
	require.NoError(t, remote.Set(&memcache.Item{Key: cacheKey(3), Value: data}))

	got, ok := c.Get(ctx, 3)
	require.True(t, ok)
	assert.Equal(t, 120, got.Price)

	// Served from the local tier even if memcached goes away.
	remote.getErr = errors.New("connection refused")
	_, ok = c.Get(ctx, 3)
	assert.True(t, ok)
}

func TestPropertyCache_SetWritesBothTiers(t *testing.T) {
	remote := newFakeMemcache()
	c := newPropertyCache(&config.CacheConfig{MemcachedTTL: 90 * time.Second}, remote, newDiscardLogger())
	defer c.stop()

	c.Set(context.Background(), testProperty())

	item, err := remote.Get(cacheKey(3))
	require.NoError(t, err)
	assert.Equal(t, int32(90), item.Expiration)

	c.Invalidate(context.Background(), 3)
	_, err = remote.Get(cacheKey(3))
	assert.ErrorIs(t, err, memcache.ErrCacheMiss)
}

func TestPropertyCache_RemoteErrorIsMiss(t *testing.T) {
	remote := newFakeMemcache()
	remote.getErr = errors.New("timeout")
	c := newPropertyCache(&config.CacheConfig{}, remote, newDiscardLogger())
	defer c.stop()

	_, ok := c.Get(context.Background(), 3)

	assert.False(t, ok)
}

func TestPropertyCache_CorruptRemoteEntryIsDropped(t *testing.T) {
	remote := newFakeMemcache()
	require.NoError(t, remote.Set(&memcache.Item{Key: cacheKey(3), Value: []byte("{not json")}))
	c := newPropertyCache(&config.CacheConfig{}, remote, newDiscardLogger())
	defer c.stop()

	_, ok := c.Get(context.Background(), 3)

	assert.False(t, ok)
	_, err := remote.Get(cacheKey(3))
	assert.ErrorIs(t, err, memcache.ErrCacheMiss)
}

func TestPropertyCache_InvalidateFencesStaleFill(t *testing.T) {
	remote := newFakeMemcache()
	c := newPropertyCache(&config.CacheConfig{InvalidationFence: 50 * time.Millisecond}, remote, newDiscardLogger())
	defer c.stop()
	ctx := context.Background()

	// A read that loaded the row before the review committed finishes after the invalidation.
	stale := testProperty()
	stale.ReviewCount = 1
	c.Invalidate(ctx, 3)
	c.Set(ctx, stale)

	_, ok := c.Get(ctx, 3)
	assert.False(t, ok, "fill during the fence window is dropped")
	_, err := remote.Get(cacheKey(3))
	assert.ErrorIs(t, err, memcache.ErrCacheMiss)

	fence, err := remote.Get(fenceKey(3))
	require.NoError(t, err)
	assert.Equal(t, int32(1), fence.Expiration)

	// The fake never expires items, so clear the shared fence by hand.
	require.NoError(t, remote.Delete(fenceKey(3)))

	assert.Eventually(t, func() bool {
		fresh := testProperty()
		fresh.ReviewCount = 2
		c.Set(ctx, fresh)
		got, ok := c.Get(ctx, 3)

		return ok && got.ReviewCount == 2
	}, time.Second, 10*time.Millisecond)
}
