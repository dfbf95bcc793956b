package main

import (
	"fmt"
	"os"

	"github.com/3-lines-studio/isotodo"
	"github.com/3-lines-studio/isotodo/internal/config"
	"github.com/spf13/cobra"
)

func newRenderCmd(ro *rootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the rendered page to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(ro.v)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			app, err := isotodo.New(cmd.Context(),
				isotodo.WithConfig(cfg),
				isotodo.WithWatch(false),
				isotodo.WithLogger(newLogger(cfg, os.Stderr)),
			)
			if err != nil {
				return err
			}
			defer func() { _ = app.Stop() }()

			page, err := app.Render(cmd.Context(), path)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(page)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "/", "Route to render")
	return cmd
}
