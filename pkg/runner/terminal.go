package runner

import (
	"golang.org/x/term"
)

type fdHolder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is a file descriptor attached to a terminal.
// Anything that is not an *os.File (buffers, pipes wrapped in readers) is not.
func IsTerminal(v any) bool {
	f, ok := v.(fdHolder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
