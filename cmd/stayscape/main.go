package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"stayscape/config"
	"stayscape/internal/delivery"
	"stayscape/internal/delivery/api"
	"stayscape/internal/delivery/api/middleware"
	"stayscape/internal/delivery/api/router/handler"
	"stayscape/internal/infra/auth"
	"stayscape/internal/infra/cache"
	logs "stayscape/internal/infra/log"
	"stayscape/internal/infra/persistence/memory"
	"stayscape/internal/infra/persistence/postgres"
	"stayscape/internal/infra/pubsub"
	"stayscape/internal/infra/qrcode"
	"stayscape/internal/infra/seed"
	"stayscape/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seed.Register,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectRepo binds the repository ports to the configured storage driver.
func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		return fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewPropertyRepository,
			postgres.NewBookingRepository,
			postgres.NewReviewRepository,
			postgres.NewFavoriteRepository,
			postgres.NewTransactionManager,
		)
	}

	return fx.Provide(
		memory.NewStore,
		memory.NewUserRepository,
		memory.NewPropertyRepository,
		memory.NewBookingRepository,
		memory.NewReviewRepository,
		memory.NewFavoriteRepository,
		memory.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			cache.NewPropertyCache,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPropertyService,
			impl.NewAvailabilityService,
			impl.NewBookingService,
			impl.NewReviewService,
			impl.NewFavoriteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPropertyHandler,
			handler.NewBookingHandler,
			handler.NewReviewHandler,
			handler.NewFavoriteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
