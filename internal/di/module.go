package di

import (
	"github.com/inkprint/teeshop/internal/adapter/gateway"
	"github.com/inkprint/teeshop/internal/adapter/imagegen"
	"github.com/inkprint/teeshop/internal/app"
	"github.com/inkprint/teeshop/internal/config"
	"github.com/inkprint/teeshop/internal/logger"
	"github.com/inkprint/teeshop/internal/pkg/exclusion"
	"github.com/inkprint/teeshop/internal/server/http/handlers"
	"github.com/inkprint/teeshop/internal/server/http/router"
	"github.com/inkprint/teeshop/internal/storage"
	"github.com/inkprint/teeshop/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		imagegen.Module,
		gateway.Module,
		exclusion.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
