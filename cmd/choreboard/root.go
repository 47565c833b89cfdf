package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"choreboard/internal/config"
	"choreboard/internal/database"
	"choreboard/internal/logger"
	"choreboard/migrations"
)

var (
	// configFile is set by the --config flag.
	configFile string

	cfg *config.Config
	lg  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "choreboard",
	Short: "Household chores backend",
	Long: `choreboard tracks roommates, rooms and the chores assigned to them,
and serves the JSON API consumed by the household dashboard.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if lg != nil {
			_ = lg.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./choreboard.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(importTodoistCmd)
}

// initApp loads configuration and builds the process logger.
func initApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	lg, err = logger.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return nil
}

// openStore connects to the configured database, creates missing tables and
// makes sure the default rooms exist.
func openStore(ctx context.Context) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := migrations.EnsureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	added, err := migrations.SeedRooms(ctx, db, migrations.DefaultRooms)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("seed rooms: %w", err)
	}
	if added > 0 {
		lg.Info("seeded default rooms", zap.Int("added", added))
	}
	return db, nil
}
