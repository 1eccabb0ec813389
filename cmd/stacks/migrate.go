package main

import (
	"github.com/aussiebroadwan/stacks/internal/library/app"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.LoadConfig()
			logger := app.NewLogger(cfg)

			db, err := app.OpenStore(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			return db.Close()
		},
	}
}
