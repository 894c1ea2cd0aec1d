package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTranslate EventType = "translate"
	EventCacheHit  EventType = "cache_hit"
	EventCacheMiss EventType = "cache_miss"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TranslateEvent describes one completed translation.
type TranslateEvent struct {
	EventBase
	Direction Direction     `json:"direction"`
	Alphabet  string        `json:"alphabet"`
	InputLen  int           `json:"input_len"`
	OutputLen int           `json:"output_len"`
	Cached    bool          `json:"cached"`
	Duration  time.Duration `json:"duration"`
}

// CacheEvent describes a cache lookup.
type CacheEvent struct {
	EventBase
	Direction Direction `json:"direction"`
	Key       string    `json:"key"`
}

// LifecycleHooks defines callbacks for transcoder observability.
type LifecycleHooks struct {
	OnTranslate func(context.Context, *TranslateEvent)
	OnCacheHit  func(context.Context, *CacheEvent)
	OnCacheMiss func(context.Context, *CacheEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTranslate: chain(h.OnTranslate, other.OnTranslate),
		OnCacheHit:  chain(h.OnCacheHit, other.OnCacheHit),
		OnCacheMiss: chain(h.OnCacheMiss, other.OnCacheMiss),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
