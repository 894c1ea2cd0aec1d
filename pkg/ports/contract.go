package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/morse/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCacheContract runs a suite of tests to verify that a TranslationCache
// implementation adheres to the defined interface contract.
func RunCacheContract(t *testing.T, cache TranslationCache) {
	ctx := context.Background()
	suffix := time.Now().Format("20060102150405.000000000")

	t.Run("Set and Get", func(t *testing.T) {
		key := domain.CacheKey("international", "contract", domain.ToMorse, "sos-"+suffix)
		tr := &domain.Translation{
			Direction: domain.ToMorse,
			Alphabet:  "international",
			Input:     "sos",
			Output:    ". . .   --- --- ---   . . .",
			Words:     1,
			Letters:   3,
		}

		require.NoError(t, cache.Set(ctx, key, tr), "Set should not return error")

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, tr.Output, loaded.Output)
		assert.Equal(t, tr.Direction, loaded.Direction)
		assert.Equal(t, tr.Letters, loaded.Letters)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+suffix)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Isolation", func(t *testing.T) {
		key := "isolation-" + suffix
		tr := &domain.Translation{Output: "A"}
		require.NoError(t, cache.Set(ctx, key, tr))

		// Mutating the caller's copy must not reach the cache.
		tr.Output = "B"

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "A", loaded.Output)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := "overwrite-" + suffix
		require.NoError(t, cache.Set(ctx, key, &domain.Translation{Output: "old"}))
		require.NoError(t, cache.Set(ctx, key, &domain.Translation{Output: "new"}))

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "new", loaded.Output)
	})

	t.Run("Delete", func(t *testing.T) {
		key := "delete-" + suffix
		require.NoError(t, cache.Set(ctx, key, &domain.Translation{Output: "x"}))

		require.NoError(t, cache.Delete(ctx, key), "Delete should not return error")

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, key), "Deleting twice should be harmless")
	})
}
