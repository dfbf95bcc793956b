package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/3-lines-studio/isotodo"
	"github.com/3-lines-studio/isotodo/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// newServeCmd is also what the bare root command runs, so its flags live on
// the root's persistent flag set.
func newServeCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Render the page and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, ro)
		},
	}
}

func runServe(cmd *cobra.Command, ro *rootOptions) error {
	cfg, err := config.Load(ro.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := newLogger(cfg, cmd.OutOrStdout())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []isotodo.Option{
		isotodo.WithConfig(cfg),
		isotodo.WithLogger(log),
	}
	if cfg.MetricsPort > 0 {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, isotodo.WithMetrics(reg))
	}

	app, err := isotodo.New(ctx, opts...)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return err
	}
	defer func() { _ = app.Stop() }()

	if addr := cfg.MetricsAddr(); addr != "" {
		go func() {
			if err := app.ServeMetrics(ctx, addr); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	return app.ListenAndServe(ctx, cfg.Addr())
}
