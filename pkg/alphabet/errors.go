package alphabet

import "errors"

var (
	// ErrInvalidSymbol is returned when an entry symbol is not an ASCII letter or digit.
	ErrInvalidSymbol = errors.New("symbol must be an ASCII letter or digit")

	// ErrEmptyCode is returned when an entry has no code.
	ErrEmptyCode = errors.New("empty morse code")

	// ErrDuplicateSymbol is returned when a symbol appears twice in a table.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrAmbiguousCode is returned when two symbols share one code.
	// Decoding such a table could not tell the symbols apart.
	ErrAmbiguousCode = errors.New("ambiguous morse code")

	// ErrInvalidPattern is returned when a dot/dash pattern contains anything else.
	ErrInvalidPattern = errors.New("invalid dot/dash pattern")

	// ErrUnknownAlphabet is returned by ByName for unregistered names.
	ErrUnknownAlphabet = errors.New("unknown alphabet")
)
