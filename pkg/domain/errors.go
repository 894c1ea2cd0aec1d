package domain

import "errors"

// ErrUnknownDirection is returned when a direction name cannot be parsed.
var ErrUnknownDirection = errors.New("unknown direction")

// ErrCacheMiss is returned by a TranslationCache when no entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// ErrSessionNotFound is returned when a live session ID cannot be found.
var ErrSessionNotFound = errors.New("session not found")
