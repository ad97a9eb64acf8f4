package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/inkprint/teeshop/internal/config"
	"github.com/inkprint/teeshop/internal/domain/repository"
	"github.com/inkprint/teeshop/internal/storage/memory"
	"github.com/inkprint/teeshop/internal/storage/postgres"
)

// Module provides the OrderStore. The in-memory store is the default;
// a configured DSN swaps in the PostgreSQL implementation behind the
// same interface.
var Module = fx.Options(
	fx.Provide(newOrderStore),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newOrderStore(p storeParams) (repository.OrderStore, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory order store")
		return memory.NewStore(), nil
	}
	p.Logger.Info("using postgres order store")
	return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, store repository.OrderStore) {
	closer, ok := store.(interface{ Close() })
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			closer.Close()
			return nil
		},
	})
}
