package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/morse/pkg/adapters/memory"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Contract(t *testing.T) {
	cache := memory.NewCache(0)
	ports.RunCacheContract(t, cache)
}

func TestMemoryCache_Eviction(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache(2)

	require.NoError(t, cache.Set(ctx, "a", &domain.Translation{Output: "A"}))
	require.NoError(t, cache.Set(ctx, "b", &domain.Translation{Output: "B"}))

	// Touch "a" so "b" becomes the eviction candidate.
	_, err := cache.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, cache.Set(ctx, "c", &domain.Translation{Output: "C"}))
	assert.Equal(t, 2, cache.Len())

	_, err = cache.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	got, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Output)
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cache := memory.NewCache(8, memory.WithTTL(time.Minute), memory.WithClock(clock))
	require.NoError(t, cache.Set(ctx, "k", &domain.Translation{Output: "v"}))

	now = now.Add(30 * time.Second)
	_, err := cache.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.Equal(t, 0, cache.Len())
}
