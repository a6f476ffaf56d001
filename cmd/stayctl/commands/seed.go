package commands

import (
	"log/slog"

	"stayscape/internal/infra/auth"
	"stayscape/internal/infra/persistence/postgres"
	"stayscape/internal/infra/seed"

	"github.com/spf13/cobra"
)

var migrateFirst bool

// seedCmd loads the demo catalogue
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalogue into an empty store",
	Long: `Create the demo host account and its listings. Nothing is written when
the store already contains properties.

Examples:
  stayctl seed
  stayctl seed --migrate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&migrateFirst, "migrate", false, "Migrate the schema before seeding")
}

func runSeed(cmd *cobra.Command) error {
	cfg, logger, db, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(db)

	ctx := cmd.Context()
	if migrateFirst {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
	}

	created, err := seed.Run(ctx, cfg.Seed,
		postgres.NewUserRepository(db),
		postgres.NewPropertyRepository(db),
		auth.NewBcryptHasher(cfg))
	if err != nil {
		return err
	}

	if created == 0 {
		logger.Info("Store already has properties, nothing seeded")

		return nil
	}

	logger.Info("Demo catalogue seeded", slog.Int("properties", created))

	return nil
}
