package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"choreboard/internal/database"
	"choreboard/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create any missing tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.EnsureSchema(db); err != nil {
			return err
		}
		lg.Info("schema is up to date", zap.String("driver", cfg.Database.Driver))
		return nil
	},
}
