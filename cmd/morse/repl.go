package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aretw0/morse"
	"github.com/aretw0/morse/internal/presentation/tui"
	"github.com/aretw0/morse/pkg/runner"
	"github.com/aretw0/morse/pkg/session"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Translate line by line in an interactive session",
	Long: `Starts an interactive session that keeps an english and a Morse buffer in sync.
Each line replaces one side and prints the other. Lines made only of dots,
dashes and spaces are treated as Morse unless a mode is forced.

Commands: :english, :morse, :auto, :show, :quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cache, closeCache, err := buildCache(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeCache()

		tc, err := buildTranscoder(cfg, cache)
		if err != nil {
			return err
		}

		jsonMode, _ := cmd.Flags().GetBool("json")
		mode, _ := cmd.Flags().GetString("mode")
		welcome, _ := cmd.Flags().GetBool("welcome")

		in, out := cmd.InOrStdin(), cmd.OutOrStdout()
		var handler runner.IOHandler
		if jsonMode {
			handler = runner.NewJSONHandler(in, out)
		} else {
			var opts []runner.TextHandlerOption
			if runner.IsTerminal(in) && runner.IsTerminal(out) {
				tui.PrintBanner(out, strings.TrimSpace(morse.Version))
				opts = append(opts, runner.WithTextHandlerRenderer(tui.Highlight(out)))
			}
			handler = runner.NewTextHandler(in, out, opts...)
		}

		r := runner.NewRunner(session.New("repl", tc, nil),
			runner.WithInputHandler(handler),
			runner.WithLogger(logger),
			runner.WithMode(runner.Mode(mode)),
			runner.WithWelcome(welcome),
		)
		return r.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("json", false, "Read JSON strings and write JSON lines")
	replCmd.Flags().String("mode", string(runner.ModeAuto), "Initial mode: auto, english or morse")
	replCmd.Flags().Bool("welcome", false, "Preload the welcome text into the english buffer")
	replCmd.Flags().String("cache", "", "Cache backend: none, memory or redis")
	replCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		switch runner.Mode(mode) {
		case runner.ModeAuto, runner.ModeEnglish, runner.ModeMorse:
			return nil
		}
		return fmt.Errorf("unknown mode %q (want auto, english or morse)", mode)
	}
}

