package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/morse/pkg/domain"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultSize is the number of translations kept when no size is given.
const DefaultSize = 1024

// Cache implements ports.TranslationCache in memory with LRU eviction.
// Safe for concurrent use.
type Cache struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
}

type entry struct {
	translation domain.Translation
	expires     time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the expiration for entries. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithClock overrides the time source (used by tests).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a new in-memory cache holding at most size entries.
func NewCache(size int, opts ...Option) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	// lru.New only fails for non-positive sizes.
	entries, _ := lru.New(size)

	c := &Cache{
		entries: entries,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a translation from memory.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Translation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries.Get(key)
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	e := v.(entry)
	if !e.expires.IsZero() && c.now().After(e.expires) {
		c.entries.Remove(key)
		return nil, domain.ErrCacheMiss
	}

	// Copy on read so callers can't mutate cached state through the pointer
	t := e.translation
	return &t, nil
}

// Set stores a copy of the translation.
func (c *Cache) Set(ctx context.Context, key string, t *domain.Translation) error {
	e := entry{translation: *t}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Add(key, e)
	return nil
}

// Delete removes the entry.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Remove(key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	return c.entries.Len()
}
