package runner

import (
	"context"

	"github.com/aretw0/morse/pkg/session"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (terminal) and JSON (structured) modes.
type IOHandler interface {
	// Input reads the next line. It returns io.EOF when the source is
	// exhausted and ctx.Err() when the context ends first.
	Input(ctx context.Context) (string, error)

	// Output presents the session state after an edit.
	Output(ctx context.Context, update session.Update) error

	// SystemOutput presents a meta-message (command feedback, errors).
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer transforms text before it is written.
// This allows terminal styling without coupling the runner to a TUI package.
type ContentRenderer func(string) (string, error)
