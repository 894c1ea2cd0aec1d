package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/morse/internal/config"
	"github.com/aretw0/morse/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the transcoder as an MCP Server.
This allows AI agents to call english_to_morse, morse_to_english and sanitize
as tools and to read the active alphabet from morse://alphabet.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
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

		srv := mcp.NewServer(tc, mcp.WithLogger(logger))

		switch cfg.MCP.Transport {
		case config.TransportStdio:
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("starting morse MCP server (stdio)")
			return srv.ServeStdio()
		case config.TransportSSE:
			logger.Info("starting morse MCP server (SSE)", "port", cfg.MCP.Port)
			if err := srv.ServeSSE(ctx, cfg.MCP.Port); err != nil {
				return err
			}
			logger.Info("MCP server stopped gracefully")
			return nil
		}
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", cfg.MCP.Transport)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 0, "Port to listen on (only for SSE)")
	mcpCmd.Flags().String("cache", "", "Cache backend: none, memory or redis")
}
