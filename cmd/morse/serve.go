package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/morse"
	httpAdapter "github.com/aretw0/morse/pkg/adapters/http"
	"github.com/aretw0/morse/pkg/observability"
	"github.com/aretw0/morse/pkg/session"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the transcoder as an HTTP server exposing a JSON API, a live-preview
WebSocket at /v1/live and, when enabled, Prometheus metrics at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cache, closeCache, err := buildCache(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeCache()

		var (
			tcOpts     []morse.Option
			handlerOpt []httpAdapter.Option
			sessOpts   = []session.Option{session.WithLogger(logger)}
		)
		if cfg.Metrics.Enabled {
			metrics := observability.NewMetrics()
			tcOpts = append(tcOpts, morse.WithLifecycleHooks(metrics.Hooks()))
			handlerOpt = append(handlerOpt, httpAdapter.WithMetrics(metrics.Handler()))
			sessOpts = append(sessOpts, session.WithActiveGauge(metrics.SetLiveSessions))
		}
		tcOpts = append(tcOpts, morse.WithLifecycleHooks(observability.LogHooks(logger)))

		tc, err := buildTranscoder(cfg, cache, tcOpts...)
		if err != nil {
			return err
		}

		handlerOpt = append(handlerOpt,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithSessions(session.NewManager(tc, sessOpts...)),
		)

		srv := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           httpAdapter.NewHandler(tc, handlerOpt...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting morse server",
				"addr", srv.Addr,
				"alphabet", tc.Alphabet().Name(),
				"cache", cfg.Cache.Backend,
				"metrics", cfg.Metrics.Enabled,
			)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case <-ctx.Done():
			logger.Info("shutdown signal received")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				return srv.Close()
			}
			logger.Info("morse server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().Bool("metrics", true, "Expose Prometheus metrics at /metrics")
	serveCmd.Flags().String("cache", "", "Cache backend: none, memory or redis")
	serveCmd.Flags().Duration("cache-ttl", 0, "Cache entry lifetime (0 = config default)")
	serveCmd.Flags().String("redis-addr", "", "Redis address for the redis cache backend")
}
