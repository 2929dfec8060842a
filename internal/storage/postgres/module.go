package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/pricecompare/internal/config"
	"github.com/polkiloo/pricecompare/internal/domain/repository"
)

// Module wires PostgreSQL storage, the user and order repositories and a health probe.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.Factory { return s },
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		fx.Annotate(healthCheck, fx.ResultTags(repository.HealthGroup)),
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func healthCheck(s *Storage) repository.HealthCheck {
	return repository.HealthCheck{Name: "postgres", Check: s.HealthCheck}
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("closing postgres pool")
			storage.Close()
			return nil
		},
	})
}
