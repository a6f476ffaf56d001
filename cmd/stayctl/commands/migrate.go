package commands

import (
	"log/slog"

	"stayscape/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Apply the schema of users, properties, bookings, reviews and favorites.

Examples:
  stayctl migrate
  POSTGRES_MASTER_HOST=db stayctl migrate -v`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

func runMigrate(cmd *cobra.Command) error {
	_, logger, db, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(db)

	if err := postgres.Migrate(cmd.Context(), db); err != nil {
		return err
	}

	logger.Info("Schema migrated", slog.String("database", db.Migrator().CurrentDatabase()))

	return nil
}
