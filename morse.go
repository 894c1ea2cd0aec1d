package morse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/morse/pkg/alphabet"
	"github.com/aretw0/morse/pkg/codec"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/ports"
	"github.com/aretw0/morse/pkg/runner"
)

// EnglishToMorse encodes text with the International alphabet.
func EnglishToMorse(text string) string {
	return codec.Encode(text)
}

// MorseToEnglish decodes a Morse stream with the International alphabet.
func MorseToEnglish(text string) string {
	return codec.Decode(text)
}

// Transcoder is the high-level entry point for hosts (CLI, HTTP, MCP).
// It wraps a codec with an input guard, an optional cache and hooks.
// Safe for concurrent use.
type Transcoder struct {
	codec        *codec.Codec
	table        *alphabet.Table
	cache        ports.TranslationCache
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	maxInputSize int
	diagnostics  bool
}

var _ ports.Translator = (*Transcoder)(nil)

// Option defines a functional option for configuring the Transcoder.
type Option func(*Transcoder)

// WithAlphabet selects the lookup table (default: International).
func WithAlphabet(t *alphabet.Table) Option {
	return func(tc *Transcoder) {
		tc.table = t
	}
}

// WithCache enables caching of finished translations.
func WithCache(c ports.TranslationCache) Option {
	return func(tc *Transcoder) {
		tc.cache = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(tc *Transcoder) {
		tc.hooks = tc.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(tc *Transcoder) {
		tc.logger = logger
	}
}

// WithMaxInputSize overrides the input size limit in bytes.
// Zero keeps the default (runner.DefaultMaxInputSize or MORSE_MAX_INPUT_SIZE).
func WithMaxInputSize(n int) Option {
	return func(tc *Transcoder) {
		tc.maxInputSize = n
	}
}

// WithDiagnostics reports how many characters or tokens each translation
// dropped. Without it Translation.Dropped is always zero.
func WithDiagnostics() Option {
	return func(tc *Transcoder) {
		tc.diagnostics = true
	}
}

// New initializes a Transcoder.
func New(opts ...Option) (*Transcoder, error) {
	tc := &Transcoder{}
	for _, opt := range opts {
		opt(tc)
	}

	if tc.maxInputSize < 0 {
		return nil, fmt.Errorf("max input size must not be negative: %d", tc.maxInputSize)
	}
	if tc.table == nil {
		tc.table = alphabet.Default()
	}
	// Ensure logger is initialized so adapters never receive nil
	if tc.logger == nil {
		tc.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	tc.logger = tc.logger.With("alphabet", tc.table.Name())
	tc.codec = codec.New(tc.table)

	return tc, nil
}

// Alphabet returns the table used for conversions.
func (tc *Transcoder) Alphabet() *alphabet.Table {
	return tc.table
}

// Encode is Translate(ctx, domain.ToMorse, text).
func (tc *Transcoder) Encode(ctx context.Context, text string) (*domain.Translation, error) {
	return tc.Translate(ctx, domain.ToMorse, text)
}

// Decode is Translate(ctx, domain.ToEnglish, morse).
func (tc *Transcoder) Decode(ctx context.Context, morse string) (*domain.Translation, error) {
	return tc.Translate(ctx, domain.ToEnglish, morse)
}

// Translate converts input in the given direction.
// The conversion itself never fails; errors come from the input guard,
// an unknown direction or a cancelled context.
func (tc *Transcoder) Translate(ctx context.Context, dir domain.Direction, input string) (*domain.Translation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if dir != domain.ToMorse && dir != domain.ToEnglish {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDirection, dir)
	}

	clean, err := runner.SanitizeInputLimit(input, tc.maxInputSize)
	if err != nil {
		tc.logger.Debug("input rejected", "direction", dir, "size", len(input), "error", err)
		return nil, err
	}

	start := time.Now()
	key := domain.CacheKey(tc.table.Name(), tc.table.Fingerprint(), dir, clean)

	if res, ok := tc.lookup(ctx, dir, key); ok {
		tc.emit(ctx, res, len(input), start)
		return tc.present(res), nil
	}

	var report codec.Report
	if dir == domain.ToMorse {
		report = tc.codec.EncodeReport(clean)
	} else {
		report = tc.codec.DecodeReport(clean)
	}

	res := &domain.Translation{
		Direction: dir,
		Alphabet:  tc.table.Name(),
		Input:     clean,
		Output:    report.Output,
		Words:     report.Words,
		Letters:   report.Letters,
		Dropped:   report.Dropped,
	}

	if tc.cache != nil {
		if err := tc.cache.Set(ctx, key, res); err != nil {
			tc.logger.Warn("cache store failed", "direction", dir, "error", err)
		}
	}

	tc.emit(ctx, res, len(input), start)
	return tc.present(res), nil
}

// present hides the drop counter unless diagnostics are enabled. Cached
// entries always keep it so transcoders sharing a cache can differ.
func (tc *Transcoder) present(res *domain.Translation) *domain.Translation {
	if !tc.diagnostics {
		res.Dropped = 0
	}
	return res
}

// lookup consults the cache. Backend failures are logged and treated as a
// miss so that translation keeps working without the cache.
func (tc *Transcoder) lookup(ctx context.Context, dir domain.Direction, key string) (*domain.Translation, bool) {
	if tc.cache == nil {
		return nil, false
	}

	event := &domain.CacheEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCacheHit},
		Direction: dir,
		Key:       key,
	}

	res, err := tc.cache.Get(ctx, key)
	if err == nil {
		if tc.hooks.OnCacheHit != nil {
			tc.hooks.OnCacheHit(ctx, event)
		}
		res.Cached = true
		return res, true
	}

	if !errors.Is(err, domain.ErrCacheMiss) {
		tc.logger.Warn("cache lookup failed", "direction", dir, "error", err)
	}
	event.Type = domain.EventCacheMiss
	if tc.hooks.OnCacheMiss != nil {
		tc.hooks.OnCacheMiss(ctx, event)
	}
	return nil, false
}

func (tc *Transcoder) emit(ctx context.Context, res *domain.Translation, inputLen int, start time.Time) {
	elapsed := time.Since(start)
	tc.logger.Debug("translated",
		"direction", res.Direction,
		"input_len", inputLen,
		"output_len", len(res.Output),
		"cached", res.Cached,
		"duration", elapsed,
	)

	if tc.hooks.OnTranslate == nil {
		return
	}
	tc.hooks.OnTranslate(ctx, &domain.TranslateEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTranslate},
		Direction: res.Direction,
		Alphabet:  res.Alphabet,
		InputLen:  inputLen,
		OutputLen: len(res.Output),
		Cached:    res.Cached,
		Duration:  elapsed,
	})
}
