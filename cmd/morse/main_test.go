package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/morse/internal/config"
	"github.com/aretw0/morse/pkg/adapters/memory"
	"github.com/aretw0/morse/pkg/alphabet"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command in-process and restores every flag to its
// default afterwards, since commands are package-level singletons.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { resetFlags(rootCmd) })

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestEncodeCommand(t *testing.T) {
	out, err := execute(t, "", "encode", "SOS!")
	require.NoError(t, err)
	assert.Equal(t, ". . .   --- --- ---   . . .\n", out)
}

func TestEncodeCommand_Stdin(t *testing.T) {
	out, err := execute(t, "hi there\n", "encode")
	require.NoError(t, err)
	assert.Equal(t, ". . . .   . .       ---   . . . .   .   . --- .   .\n", out)
}

func TestDecodeCommand_JSON(t *testing.T) {
	out, err := execute(t, "", "decode", "--format", "json", ". ---       --- .")
	require.NoError(t, err)

	var res domain.Translation
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "A N", res.Output)
	assert.Equal(t, domain.ToEnglish, res.Direction)
	assert.Equal(t, 2, res.Words)
}

func TestDecodeCommand_JSONReportsDropped(t *testing.T) {
	out, err := execute(t, "", "decode", "--format", "json", ". ---   ??")
	require.NoError(t, err)

	var res domain.Translation
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "A", res.Output)
	assert.Equal(t, 1, res.Dropped)
}

func TestDecodeCommand_Report(t *testing.T) {
	out, err := execute(t, "", "decode", "--format", "report", ". . .")
	require.NoError(t, err)
	assert.Contains(t, out, "## morse_to_english")
	assert.Contains(t, out, "```\nS\n```")
}

func TestEncodeCommand_Errors(t *testing.T) {
	_, err := execute(t, "", "encode", "--format", "xml", "a")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "", "--max-input-size", "3", "encode", "abcd")
	assert.ErrorContains(t, err, "input exceeds maximum allowed size")

	_, err = execute(t, "", "--alphabet", "klingon", "encode", "a")
	assert.ErrorIs(t, err, alphabet.ErrUnknownAlphabet)
}

func TestEncodeCommand_LegacyAlphabet(t *testing.T) {
	out, err := execute(t, "", "--alphabet", "legacy", "encode", "c")
	require.NoError(t, err)
	assert.Equal(t, "--- . ---- .\n", out)
}

func TestSanitizeCommand(t *testing.T) {
	out, err := execute(t, "", "sanitize", "  Hello,", "World!  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestAlphabetCommand(t *testing.T) {
	out, err := execute(t, "", "alphabet")
	require.NoError(t, err)
	assert.Contains(t, out, "# Alphabet: international")
	assert.Contains(t, out, "| S | `...` | `. . .` |")

	out, err = execute(t, "", "alphabet", "--format", "yaml")
	require.NoError(t, err)
	var f alphabet.File
	require.NoError(t, yaml.Unmarshal([]byte(out), &f))
	table, err := f.Table()
	require.NoError(t, err)
	assert.Equal(t, alphabet.International().Entries(), table.Entries())

	out, err = execute(t, "", "alphabet", "list")
	require.NoError(t, err)
	assert.Equal(t, "international\nitu\nlegacy\n", out)
}

func TestReplCommand(t *testing.T) {
	out, err := execute(t, "sos\n... --- ...\n:quit\n", "repl", "--cache", "none")
	require.NoError(t, err)

	// Compact notation is not a valid stream: the second line decodes to nothing.
	assert.Equal(t, ". . .   --- --- ---   . . .\n\n", out)
}

func TestReplCommand_JSON(t *testing.T) {
	out, err := execute(t, "\"e\"\n", "repl", "--json", "--mode", "english")
	require.NoError(t, err)
	assert.JSONEq(t, `{"english":"e","morse":".","source":"english_to_morse"}`, out)
}

func TestReplCommand_BadMode(t *testing.T) {
	_, err := execute(t, "", "repl", "--mode", "sideways")
	assert.ErrorContains(t, err, "unknown mode")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "morse version "))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alphabet: legacy\n"), 0o644))

	out, err := execute(t, "", "--config", path, "encode", "c")
	require.NoError(t, err)
	assert.Equal(t, "--- . ---- .\n", out)
}

func TestAlphabetCommand_Mermaid(t *testing.T) {
	out, err := execute(t, "", "alphabet", "--format", "mermaid", "--highlight", "et")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "class n_d current;")
	assert.Contains(t, out, "class n_h current;")
}

func TestBuildCache_Encrypted(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{
		Backend:       config.CacheMemory,
		Size:          8,
		EncryptionKey: "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=",
	}}

	cache, closeFn, err := buildCache(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	_, isPlain := cache.(*memory.Cache)
	assert.False(t, isPlain, "cache should be wrapped")

	tr := &domain.Translation{Direction: domain.ToMorse, Input: "e", Output: "."}
	require.NoError(t, cache.Set(context.Background(), "k", tr))
	got, err := cache.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, tr.Output, got.Output)

	cfg.Cache.Backend = config.CacheNone
	cache, _, err = buildCache(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, cache)
}
