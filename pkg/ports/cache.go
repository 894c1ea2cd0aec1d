package ports

import (
	"context"

	"github.com/aretw0/morse/pkg/domain"
)

// TranslationCache stores finished translations.
// Translations are pure, so a cached entry never goes stale; expiry only
// bounds memory.
type TranslationCache interface {
	// Get returns the cached translation for key.
	// Returns domain.ErrCacheMiss if no entry exists.
	Get(ctx context.Context, key string) (*domain.Translation, error)

	// Set stores a translation under key.
	Set(ctx context.Context, key string, t *domain.Translation) error

	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
