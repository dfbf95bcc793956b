package main

import (
	"io"
	"os"

	"github.com/3-lines-studio/isotodo/internal/adapters/cli"
	"github.com/3-lines-studio/isotodo/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOptions struct {
	v          *viper.Viper
	configFile string
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{v: config.NewViper(".")}

	cmd := &cobra.Command{
		Use:          "isotodo",
		Short:        "Isomorphic todo item server",
		Long:         "isotodo renders a todo item on the server, injects it into a layout template and serves it with the public assets.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if ro.configFile != "" {
				ro.v.SetConfigFile(ro.configFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, ro)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&ro.configFile, "config", "", "Config file (default ./isotodo.yaml when present)")
	flags.Int("port", config.DefaultPort, "HTTP port")
	flags.String("public", config.DefaultPublicDir, "Directory of static assets")
	flags.String("template", config.DefaultTemplatePath, "Layout template file")
	flags.String("title", "", "Page title")
	flags.Bool("dev", false, "Development mode: readable logs and error details")
	flags.Bool("watch", false, "Re-render when the layout template changes")
	flags.Int("metrics-port", 0, "Port for Prometheus metrics (disabled if 0)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	bind(ro.v, cmd, "port", "port")
	bind(ro.v, cmd, "public_dir", "public")
	bind(ro.v, cmd, "template", "template")
	bind(ro.v, cmd, "title", "title")
	bind(ro.v, cmd, "dev", "dev")
	bind(ro.v, cmd, "watch", "watch")
	bind(ro.v, cmd, "metrics_port", "metrics-port")
	bind(ro.v, cmd, "log_level", "log-level")

	cmd.AddCommand(newServeCmd(ro))
	cmd.AddCommand(newRenderCmd(ro))
	cmd.AddCommand(newConfigCmd(ro))

	return cmd
}

func bind(v *viper.Viper, cmd *cobra.Command, key, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	_ = v.BindPFlag(key, f)
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	return cli.NewLogger(cli.LoggerOptions{
		Out:   out,
		Dev:   cfg.Dev,
		Level: cfg.LogLevel,
	})
}
