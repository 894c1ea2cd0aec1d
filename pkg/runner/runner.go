package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/morse/internal/logging"
	"github.com/aretw0/morse/pkg/codec"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/session"
)

// Mode selects how input lines are routed to the session.
type Mode string

const (
	// ModeAuto sends lines made only of dots, dashes and spaces to the Morse
	// side and everything else to the english side.
	ModeAuto    Mode = "auto"
	ModeEnglish Mode = "english"
	ModeMorse   Mode = "morse"
)

// direction returns the translation triggered by line in this mode.
func (m Mode) direction(line string) domain.Direction {
	switch m {
	case ModeEnglish:
		return domain.ToMorse
	case ModeMorse:
		return domain.ToEnglish
	}
	if codec.LooksLikeMorse(line) {
		return domain.ToEnglish
	}
	return domain.ToMorse
}

// Runner drives a session from line-oriented input.
type Runner struct {
	Session *session.Session

	// Handler is the strategy for IO. If nil, a TextHandler over
	// Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	Logger *slog.Logger

	// Mode is the initial routing mode (default ModeAuto).
	Mode Mode

	// Welcome preloads session.WelcomeText into the english buffer.
	Welcome bool
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithMode sets the initial routing mode.
func WithMode(mode Mode) Option {
	return func(r *Runner) {
		r.Mode = mode
	}
}

// WithWelcome preloads the welcome text before reading input.
func WithWelcome(enabled bool) Option {
	return func(r *Runner) {
		r.Welcome = enabled
	}
}

// NewRunner creates a Runner bound to sess.
func NewRunner(sess *session.Session, opts ...Option) *Runner {
	r := &Runner{
		Session: sess,
		Logger:  logging.NewNop(),
		Mode:    ModeAuto,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads lines until the input ends, ":quit" is entered or ctx is done.
// All three are a normal exit and return nil. Rejected lines (too large,
// invalid UTF-8) are reported through the handler and the loop continues.
func (r *Runner) Run(ctx context.Context) error {
	if r.Session == nil {
		return errors.New("runner: session is required")
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	handler := r.resolveHandler()
	mode := r.Mode
	if mode == "" {
		mode = ModeAuto
	}

	if r.Welcome {
		if err := r.apply(ctx, handler, domain.ToMorse, session.WelcomeText); err != nil {
			return err
		}
	}

	for {
		line, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				r.Logger.Debug("runner stopped", "session_id", r.Session.ID(), "reason", err)
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			next, quit, err := r.command(ctx, handler, mode, strings.TrimSpace(line))
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			mode = next
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := r.apply(ctx, handler, mode.direction(line), line); err != nil {
			return err
		}
	}
}

// apply edits one side of the session. Only handler failures are returned.
func (r *Runner) apply(ctx context.Context, handler IOHandler, dir domain.Direction, text string) error {
	update, changed, err := r.Session.Set(ctx, dir, text)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		r.Logger.Debug("line rejected", "session_id", r.Session.ID(), "error", err)
		return handler.SystemOutput(ctx, fmt.Sprintf("error: %v", err))
	}
	if !changed {
		update.Source = dir
	}
	if err := handler.Output(ctx, update); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

func (r *Runner) command(ctx context.Context, handler IOHandler, mode Mode, cmd string) (Mode, bool, error) {
	var msg string
	switch strings.ToLower(cmd) {
	case ":quit", ":q", ":exit":
		return mode, true, nil
	case ":english", ":e":
		mode, msg = ModeEnglish, "mode: english"
	case ":morse", ":m":
		mode, msg = ModeMorse, "mode: morse"
	case ":auto", ":a":
		mode, msg = ModeAuto, "mode: auto"
	case ":show":
		snap := r.Session.Snapshot()
		msg = fmt.Sprintf("english: %s\nmorse: %s", snap.English, snap.Morse)
	default:
		msg = fmt.Sprintf("unknown command %q (try :english, :morse, :auto, :show, :quit)", cmd)
	}
	if err := handler.SystemOutput(ctx, msg); err != nil {
		return mode, false, fmt.Errorf("output error: %w", err)
	}
	return mode, false, nil
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}
