package di

import (
	"go.uber.org/fx"

	"github.com/saleshoes/storefront/internal/adapter/gateway"
	"github.com/saleshoes/storefront/internal/app"
	"github.com/saleshoes/storefront/internal/config"
	"github.com/saleshoes/storefront/internal/logger"
	"github.com/saleshoes/storefront/internal/pkg/auth"
	"github.com/saleshoes/storefront/internal/server/http/handlers"
	"github.com/saleshoes/storefront/internal/server/http/router"
	"github.com/saleshoes/storefront/internal/storage/postgres"
	"github.com/saleshoes/storefront/internal/storage/session"
	"github.com/saleshoes/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		session.Module,
		gateway.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthPinger { return s }),
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
