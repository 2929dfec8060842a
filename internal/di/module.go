package di

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/polkiloo/pricecompare/internal/adapter/catalog"
	"github.com/polkiloo/pricecompare/internal/app"
	"github.com/polkiloo/pricecompare/internal/config"
	"github.com/polkiloo/pricecompare/internal/logger"
	"github.com/polkiloo/pricecompare/internal/pkg/auth"
	"github.com/polkiloo/pricecompare/internal/pkg/idgen"
	"github.com/polkiloo/pricecompare/internal/server/http/handlers"
	"github.com/polkiloo/pricecompare/internal/server/http/middleware"
	"github.com/polkiloo/pricecompare/internal/server/http/router"
	"github.com/polkiloo/pricecompare/internal/storage/postgres"
	"github.com/polkiloo/pricecompare/internal/storage/rediscart"
	"github.com/polkiloo/pricecompare/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: l}
		}),
		auth.Module,
		idgen.Module,
		postgres.Module,
		rediscart.Module,
		catalog.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.ShopFacade) handlers.ShopFacade { return f },
			func(f *app.ShopFacade) middleware.TokenParser { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
