package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"english_to_morse", ToMorse},
		{"encode", ToMorse},
		{" English ", ToMorse},
		{"morse_to_english", ToEnglish},
		{"DECODE", ToEnglish},
		{"morse", ToEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestDirection_Reverse(t *testing.T) {
	assert.Equal(t, ToEnglish, ToMorse.Reverse())
	assert.Equal(t, ToMorse, ToEnglish.Reverse())
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("international", "f1", ToMorse, "sos")
	b := CacheKey("international", "f1", ToMorse, "sos")
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, CacheKey("legacy", "f1", ToMorse, "sos"))
	assert.NotEqual(t, a, CacheKey("international", "f2", ToMorse, "sos"))
	assert.NotEqual(t, a, CacheKey("international", "f1", ToEnglish, "sos"))
	assert.NotEqual(t, a, CacheKey("international", "f1", ToMorse, "SOS"))
	assert.Contains(t, a, "international:f1:english_to_morse:")
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	first := LifecycleHooks{
		OnTranslate: func(context.Context, *TranslateEvent) { calls = append(calls, "first") },
	}
	second := LifecycleHooks{
		OnTranslate: func(context.Context, *TranslateEvent) { calls = append(calls, "second") },
		OnCacheHit:  func(context.Context, *CacheEvent) { calls = append(calls, "hit") },
	}

	merged := first.Merge(second)
	merged.OnTranslate(context.Background(), &TranslateEvent{})
	merged.OnCacheHit(context.Background(), &CacheEvent{})
	assert.Nil(t, merged.OnCacheMiss)

	assert.Equal(t, []string{"first", "second", "hit"}, calls)
}
