package codec

import (
	"strings"

	"github.com/aretw0/morse/pkg/alphabet"
)

// Sanitize reduces raw text to canonical text: lowercase ASCII letters and
// digits separated by single spaces, with no leading or trailing space.
//
// Boundary whitespace is trimmed, ASCII letters are folded to lowercase, any
// run of spaces, tabs and newlines becomes one space, and every other
// character is dropped without a placeholder.
func Sanitize(raw string) string {
	out, _ := sanitize(raw)
	return out
}

// sanitize also reports how many characters were dropped.
func sanitize(raw string) (string, int) {
	trimmed := strings.TrimSpace(raw)

	var b strings.Builder
	b.Grow(len(trimmed))

	dropped := 0
	lastSpace := false
	for _, r := range trimmed {
		r = foldASCII(r)
		switch {
		case alphabet.IsSymbol(r):
			b.WriteRune(r)
			lastSpace = false
		case isWhitespace(r):
			// A dropped character next to the boundary must not leave a leading space.
			if lastSpace || b.Len() == 0 {
				continue
			}
			b.WriteByte(' ')
			lastSpace = true
		default:
			dropped++
		}
	}

	out := b.String()
	if lastSpace {
		out = out[:len(out)-1]
	}
	return out, dropped
}

// IsCanonical reports whether s is already in canonical form.
func IsCanonical(s string) bool {
	if s == "" {
		return true
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		if c == ' ' {
			if s[i-1] == ' ' {
				return false
			}
			continue
		}
		if !alphabet.IsSymbol(c) {
			return false
		}
	}
	return true
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
