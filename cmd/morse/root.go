package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/morse/internal/config"
	"github.com/aretw0/morse/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

// flagKeys maps flag names to config keys. Flags are bound only when the
// running command defines them.
var flagKeys = map[string]string{
	"alphabet":       config.KeyAlphabet,
	"log-level":      config.KeyLogLevel,
	"max-input-size": config.KeyMaxInputSize,
	"addr":           config.KeyHTTPAddr,
	"metrics":        config.KeyMetricsEnabled,
	"cache":          config.KeyCacheBackend,
	"cache-ttl":      config.KeyCacheTTL,
	"redis-addr":     config.KeyRedisAddr,
	"transport":      config.KeyMCPTransport,
	"port":           config.KeyMCPPort,
}

var rootCmd = &cobra.Command{
	Use:   "morse",
	Short: "Morse is a bidirectional english/Morse transcoder",
	Long: `Morse translates english text into International Morse code and back.

A dot is written '.', a dash '---'. Parts of a letter are separated by one
space, letters by three spaces and words by seven spaces.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New()
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}

		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(v, path)
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := logging.ParseLevel(cfg.LogLevel)
		logger = logging.New(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./morse.yaml or $XDG_CONFIG_HOME/morse/morse.yaml)")
	rootCmd.PersistentFlags().StringP("alphabet", "a", "", "Alphabet name (international, legacy) or path to a YAML/JSON table")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int("max-input-size", 0, "Maximum input size in bytes (0 = default)")
}
