package main

import (
	"fmt"

	"github.com/3-lines-studio/isotodo/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(ro.v)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
