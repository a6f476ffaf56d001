// Package commands implements the stayctl admin CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"stayscape/config"
	logs "stayscape/internal/infra/log"
	"stayscape/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stayctl",
	Short: "Administration tool for the StayScape booking service",
	Long: `stayctl runs maintenance tasks against the configured PostgreSQL store.

Configuration is read the same way as the service: config/config.yaml
overridden by environment variables such as POSTGRES_MASTER_HOST.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// openStore loads the config and connects to PostgreSQL.
func openStore() (*config.Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, nil, err
	}
	if verbose {
		cfg.Env.Log.Level = "debug"
	}

	logger, err := logs.New(logs.Params{Config: cfg, Output: os.Stderr})
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to open store")
	}

	return cfg, logger, db, nil
}

func closeStore(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
