package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/morse"
	"github.com/aretw0/morse/internal/config"
	"github.com/aretw0/morse/internal/presentation/tui"
	"github.com/aretw0/morse/pkg/adapters/memory"
	"github.com/aretw0/morse/pkg/adapters/redis"
	"github.com/aretw0/morse/pkg/alphabet"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/persistence/middleware"
	"github.com/aretw0/morse/pkg/ports"
	"github.com/aretw0/morse/pkg/runner"
	"github.com/spf13/cobra"
)

// buildCache creates the configured cache, encrypted at rest when a key is
// configured. The returned close function is never nil.
func buildCache(ctx context.Context, c *config.Config) (ports.TranslationCache, func() error, error) {
	noop := func() error { return nil }

	var (
		cache   ports.TranslationCache
		closeFn = noop
	)
	switch c.Cache.Backend {
	case config.CacheMemory:
		cache = memory.NewCache(c.Cache.Size, memory.WithTTL(c.Cache.TTL))
	case config.CacheRedis:
		rc := redis.New(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
			redis.WithTTL(c.Cache.TTL),
			redis.WithPrefix(c.Redis.Prefix),
		)
		if err := rc.Ping(ctx); err != nil {
			rc.Close()
			return nil, noop, fmt.Errorf("redis cache unavailable at %s: %w", c.Redis.Addr, err)
		}
		cache, closeFn = rc, rc.Close
	default:
		return nil, noop, nil
	}

	if c.Cache.EncryptionKey == "" {
		return cache, closeFn, nil
	}
	mw, err := encryptionMiddleware(c.Cache)
	if err != nil {
		closeFn()
		return nil, noop, err
	}
	return middleware.Chain(cache, mw), closeFn, nil
}

func encryptionMiddleware(c config.CacheConfig) (middleware.Middleware, error) {
	active, err := middleware.DecodeKey(c.EncryptionKey)
	if err != nil {
		return nil, err
	}
	ec := middleware.EncryptionConfig{ActiveKey: active}
	for _, k := range c.FallbackKeys {
		key, err := middleware.DecodeKey(k)
		if err != nil {
			return nil, err
		}
		ec.FallbackKeys = append(ec.FallbackKeys, key)
	}
	return middleware.NewEncryptionMiddleware(ec), nil
}

// buildTranscoder wires the alphabet, input limit and logger from
// configuration, then applies extra. cache may be nil.
func buildTranscoder(c *config.Config, cache ports.TranslationCache, extra ...morse.Option) (*morse.Transcoder, error) {
	table, err := alphabet.Resolve(c.Alphabet)
	if err != nil {
		return nil, err
	}

	opts := []morse.Option{
		morse.WithAlphabet(table),
		morse.WithMaxInputSize(c.MaxInputSize),
		morse.WithLogger(logger),
	}
	if cache != nil {
		opts = append(opts, morse.WithCache(cache))
	}
	return morse.New(append(opts, extra...)...)
}

// readInput joins positional arguments, or reads the whole of stdin when
// there are none. A single trailing newline from stdin is removed.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
}

// runTranslate implements the encode and decode commands.
func runTranslate(cmd *cobra.Command, args []string, dir domain.Direction) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")

	var extra []morse.Option
	if format == "report" || format == "json" {
		extra = append(extra, morse.WithDiagnostics())
	}
	tc, err := buildTranscoder(cfg, nil, extra...)
	if err != nil {
		return err
	}
	res, err := tc.Translate(cmd.Context(), dir, input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "report":
		md := tui.TranslationMarkdown(res)
		if runner.IsTerminal(out) {
			if rendered, err := tui.NewRenderer()(md); err == nil {
				md = rendered
			}
		}
		_, err := fmt.Fprint(out, md)
		return err
	case "", "text":
		_, err := fmt.Fprintln(out, res.Output)
		return err
	}
	return fmt.Errorf("unknown format %q (want text, json or report)", format)
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json or report")
}
