package main

import (
	"fmt"

	"github.com/aussiebroadwan/stacks/internal/library/app"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.LoadConfig()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			application, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "listen port (overrides PORT)")
	return cmd
}
