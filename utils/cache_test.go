package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, "test:"), mr
}

type cachedValue struct {
	Name string `json:"name"`
}

func TestCacheRoundTripAndPrefix(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	var got cachedValue
	assert.True(t, errors.Is(cache.Get(ctx, "k", &got), ErrCacheMiss))

	require.NoError(t, cache.Set(ctx, "k", cachedValue{Name: "b1"}, time.Minute))
	require.NoError(t, cache.Get(ctx, "k", &got))
	assert.Equal(t, "b1", got.Name)
	assert.True(t, mr.Exists("test:k"))

	require.NoError(t, cache.Delete(ctx, "k"))
	assert.True(t, errors.Is(cache.Get(ctx, "k", &got), ErrCacheMiss))
}

func TestSetIfGeneration(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	gen, err := cache.Generation(ctx, "gen")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	stored, err := cache.SetIfGeneration(ctx, "gen", gen, "k", cachedValue{Name: "b1"}, time.Minute)
	require.NoError(t, err)
	assert.True(t, stored)

	require.NoError(t, cache.Bump(ctx, "gen"))
	stored, err = cache.SetIfGeneration(ctx, "gen", gen, "k", cachedValue{Name: "stale"}, time.Minute)
	require.NoError(t, err)
	assert.False(t, stored)

	var got cachedValue
	require.NoError(t, cache.Get(ctx, "k", &got))
	assert.Equal(t, "b1", got.Name)

	gen, err = cache.Generation(ctx, "gen")
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
}

func TestDisabledCacheIsInert(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	assert.False(t, cache.Enabled())
	assert.True(t, errors.Is(cache.Get(ctx, "k", &cachedValue{}), ErrCacheMiss))
	assert.NoError(t, cache.Set(ctx, "k", cachedValue{}, time.Minute))
	assert.NoError(t, cache.Bump(ctx, "gen"))
	stored, err := cache.SetIfGeneration(ctx, "gen", 0, "k", cachedValue{}, time.Minute)
	assert.NoError(t, err)
	assert.False(t, stored)
}
