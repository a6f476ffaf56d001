// Package seed loads the demo catalogue into an empty store.
package seed

import (
	"context"
	"log/slog"

	"stayscape/config"
	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/repository"
	"stayscape/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the start-up seeder
type Params struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	UserRepo     repository.UserRepository
	PropertyRepo repository.PropertyRepository
	Hasher       service.PasswordHasher
}

// Register seeds the store on start when seed.enabled is set.
func Register(params Params) {
	if params.Config.Seed == nil || !params.Config.Seed.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			n, err := Run(ctx, params.Config.Seed, params.UserRepo, params.PropertyRepo, params.Hasher)
			if err != nil {
				return err
			}

			params.Logger.Info("Demo catalogue ready", slog.Int("created", n))

			return nil
		},
	})
}

// Run creates the demo host and its listings unless the store already has properties.
// It returns the number of properties created.
func Run(
	ctx context.Context,
	cfg *config.SeedConfig,
	users repository.UserRepository,
	properties repository.PropertyRepository,
	hasher service.PasswordHasher,
) (int, error) {
	existing, err := properties.ListProperties(ctx, repository.PropertyFilter{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to list properties")
	}
	if len(existing) > 0 {
		return 0, nil
	}

	host, err := ensureHost(ctx, cfg, users, hasher)
	if err != nil {
		return 0, err
	}

	listings := catalogue()
	for _, p := range listings {
		p.HostID = host.ID
		if err := properties.CreateProperty(ctx, p); err != nil {
			return 0, errors.Wrapf(err, "failed to create demo property %q", p.Title)
		}
	}

	return len(listings), nil
}

func ensureHost(ctx context.Context, cfg *config.SeedConfig, users repository.UserRepository, hasher service.PasswordHasher) (*entity.User, error) {
	host, err := users.FindUserByUsername(ctx, cfg.HostUsername)
	if err == nil {
		return host, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find demo host")
	}

	// Without a configured password the account exists but nobody can log in as it.
	password := cfg.HostPassword
	if password == "" {
		password = uuid.NewString()
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash demo host password")
	}

	host = &entity.User{
		Username:     cfg.HostUsername,
		PasswordHash: hash,
		Name:         "Demo Host",
		Email:        cfg.HostUsername + "@stayscape.local",
	}
	if err := users.CreateUser(ctx, host); err != nil {
		return nil, errors.Wrap(err, "failed to create demo host")
	}

	return host, nil
}
