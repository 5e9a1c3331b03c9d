package main

import (
	"context"
	"log/slog"
	"os"

	"crosslink/config"
	"crosslink/internal/async"
	"crosslink/internal/delivery"
	"crosslink/internal/delivery/http"
	"crosslink/internal/delivery/http/middleware"
	"crosslink/internal/delivery/http/router/handler"
	"crosslink/internal/delivery/worker"
	workerhandler "crosslink/internal/delivery/worker/handler"
	"crosslink/internal/domain/service"
	"crosslink/internal/infra/auth"
	logs "crosslink/internal/infra/log"
	"crosslink/internal/infra/persistence/postgres"
	"crosslink/internal/infra/presence"
	"crosslink/internal/infra/pubsub"
	"crosslink/internal/usecase"
	"crosslink/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startSweeper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newWorkerPool,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLinkRepository,
			postgres.NewLinkEventRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			presence.NewHub,
			newPresenceService,
			newPlatformClassifier,
		),
	)
}

// newWorkerPool creates the bounded pool that runs durable-store operations.
func newWorkerPool(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *async.Pool {
	pool := async.NewPool(cfg.Worker.PoolSize, cfg.Worker.QueueSize, logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pool.Close()

			return nil
		},
	})

	return pool
}

// newPresenceService exposes the hub as the session layer.
func newPresenceService(hub *presence.Hub) service.PresenceService {
	return hub
}

// newPlatformClassifier exposes the hub's sticky platform memory.
func newPlatformClassifier(hub *presence.Hub) service.PlatformClassifier {
	return hub
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRequestService,
			impl.NewLinkService,
			impl.NewLookupService,
			impl.NewSweeperService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewLinkHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSweeper runs the expiry sweeper for the whole process lifetime.
func startSweeper(lc fx.Lifecycle, sweeper usecase.Sweeper) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sweeper.Run(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
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
