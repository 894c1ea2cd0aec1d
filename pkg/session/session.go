package session

import (
	"context"
	"sync"

	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/ports"
)

// Update is the state of both buffers after a change.
type Update struct {
	English string           `json:"english"`
	Morse   string           `json:"morse"`
	Source  domain.Direction `json:"source"`
	Dropped int              `json:"dropped,omitempty"`
}

// Listener receives every update. It is called with the session lock held,
// so it must not call back into the session.
type Listener func(Update)

// Session pairs an english buffer with its Morse stream.
// Safe for concurrent use.
type Session struct {
	id         string
	translator ports.Translator
	listener   Listener

	mu      sync.Mutex
	english string
	morse   string
}

// New creates a session bound to translator. listener may be nil.
func New(id string, translator ports.Translator, listener Listener) *Session {
	return &Session{
		id:         id,
		translator: translator,
		listener:   listener,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SetEnglish replaces the english buffer and recomputes the Morse side.
// It reports false, without translating, when text equals the current buffer.
func (s *Session) SetEnglish(ctx context.Context, text string) (Update, bool, error) {
	return s.set(ctx, domain.ToMorse, text)
}

// SetMorse replaces the Morse buffer and recomputes the english side.
// It reports false, without translating, when text equals the current buffer.
func (s *Session) SetMorse(ctx context.Context, text string) (Update, bool, error) {
	return s.set(ctx, domain.ToEnglish, text)
}

// Set dispatches on the edited side.
func (s *Session) Set(ctx context.Context, edited domain.Direction, text string) (Update, bool, error) {
	return s.set(ctx, edited, text)
}

// Snapshot returns the current buffers.
func (s *Session) Snapshot() Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Update{English: s.english, Morse: s.morse}
}

// dir names the translation that the edit triggers: ToMorse means the
// english side was edited.
func (s *Session) set(ctx context.Context, dir domain.Direction, text string) (Update, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.english
	if dir == domain.ToEnglish {
		current = s.morse
	}
	if text == current {
		return Update{English: s.english, Morse: s.morse}, false, nil
	}

	res, err := s.translator.Translate(ctx, dir, text)
	if err != nil {
		return Update{English: s.english, Morse: s.morse}, false, err
	}

	if dir == domain.ToMorse {
		s.english = text
		s.morse = res.Output
	} else {
		s.morse = text
		s.english = res.Output
	}

	u := Update{English: s.english, Morse: s.morse, Source: dir, Dropped: res.Dropped}
	if s.listener != nil {
		s.listener(u)
	}
	return u, true, nil
}
