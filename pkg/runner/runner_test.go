package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/morse"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/runner"
	"github.com/aretw0/morse/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, opts ...morse.Option) *session.Session {
	t.Helper()
	tc, err := morse.New(opts...)
	require.NoError(t, err)
	return session.New("test", tc, nil)
}

func runText(t *testing.T, sess *session.Session, input string, opts ...runner.Option) string {
	t.Helper()
	out := &bytes.Buffer{}
	handler := runner.NewTextHandler(strings.NewReader(input), out)
	r := runner.NewRunner(sess, append([]runner.Option{runner.WithInputHandler(handler)}, opts...)...)
	require.NoError(t, r.Run(context.Background()))
	return out.String()
}

func TestRunner_AutoDetect(t *testing.T) {
	sess := newSession(t)
	out := runText(t, sess, "sos\n. ---       --- .\n")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ". . .   --- --- ---   . . .", lines[0])
	assert.Equal(t, "A N", lines[1])

	snap := sess.Snapshot()
	assert.Equal(t, "A N", snap.English)
	assert.Equal(t, ". ---       --- .", snap.Morse)
}

func TestRunner_ForcedModes(t *testing.T) {
	sess := newSession(t)
	// "..." would be detected as Morse; :english forces the english side.
	out := runText(t, sess, ":english\n...\n:morse\n. . .\n")

	assert.Contains(t, out, "mode: english")
	assert.Contains(t, out, "mode: morse")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "", lines[1], "punctuation only encodes to nothing")
	assert.Equal(t, "S", lines[3])
}

func TestRunner_StartMode(t *testing.T) {
	sess := newSession(t)
	out := runText(t, sess, "e\n", runner.WithMode(runner.ModeMorse))
	// "e" is not a Morse token, so the decoded side is empty.
	assert.Equal(t, "\n", out)
	assert.Equal(t, "e", sess.Snapshot().Morse)
}

func TestRunner_Quit(t *testing.T) {
	sess := newSession(t)
	out := runText(t, sess, "e\n:quit\nt\n")
	assert.Equal(t, ".\n", out)
	assert.Equal(t, "e", sess.Snapshot().English)
}

func TestRunner_Commands(t *testing.T) {
	sess := newSession(t)
	out := runText(t, sess, "\n   \nhi\n:show\n:bogus\n")

	assert.Contains(t, out, "english: hi\nmorse: . . . .   . .")
	assert.Contains(t, out, `unknown command ":bogus"`)
}

func TestRunner_RejectedLineContinues(t *testing.T) {
	sess := newSession(t, morse.WithMaxInputSize(4))
	out := runText(t, sess, "too long\nok\n")

	assert.Contains(t, out, "error: input exceeds maximum allowed size")
	assert.Contains(t, out, "---   --- . ---")
	assert.Equal(t, "ok", sess.Snapshot().English)
}

func TestRunner_Welcome(t *testing.T) {
	sess := newSession(t)
	out := runText(t, sess, "", runner.WithWelcome(true))

	assert.Equal(t, session.WelcomeText, sess.Snapshot().English)
	assert.Equal(t, morse.EnglishToMorse(session.WelcomeText)+"\n", out)
}

func TestRunner_ContextCancel(t *testing.T) {
	sess := newSession(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	r := runner.NewRunner(sess, runner.WithInputHandler(runner.NewTextHandler(pr, io.Discard)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancellation")
	}
}

func TestRunner_RequiresSession(t *testing.T) {
	r := runner.NewRunner(nil)
	assert.Error(t, r.Run(context.Background()))
}

func TestRunner_JSONHandler(t *testing.T) {
	sess := newSession(t)
	in := strings.NewReader("\"hi\"\n\". ---       --- .\"\n:morse\n")
	out := &bytes.Buffer{}

	r := runner.NewRunner(sess, runner.WithInputHandler(runner.NewJSONHandler(in, out)))
	require.NoError(t, r.Run(context.Background()))

	dec := json.NewDecoder(out)

	var first session.Update
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, "hi", first.English)
	assert.Equal(t, ". . . .   . .", first.Morse)
	assert.Equal(t, domain.ToMorse, first.Source)

	var second session.Update
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "A N", second.English)
	assert.Equal(t, domain.ToEnglish, second.Source)

	var sys runner.SystemMessage
	require.NoError(t, dec.Decode(&sys))
	assert.Equal(t, "mode: morse", sys.System)
}
