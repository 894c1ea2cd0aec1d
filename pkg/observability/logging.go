package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/morse/pkg/domain"
)

// LogHooks returns lifecycle hooks that write one structured record per
// event. Translations log at Info, cache lookups at Debug.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTranslate: func(ctx context.Context, e *domain.TranslateEvent) {
			logger.InfoContext(ctx, "translate",
				"direction", e.Direction,
				"alphabet", e.Alphabet,
				"input_len", e.InputLen,
				"output_len", e.OutputLen,
				"cached", e.Cached,
				"duration", e.Duration,
			)
		},
		OnCacheHit: func(ctx context.Context, e *domain.CacheEvent) {
			logger.DebugContext(ctx, "cache_hit", "direction", e.Direction, "key", e.Key)
		},
		OnCacheMiss: func(ctx context.Context, e *domain.CacheEvent) {
			logger.DebugContext(ctx, "cache_miss", "direction", e.Direction, "key", e.Key)
		},
	}
}
