package exclusion

import (
	"go.uber.org/fx"

	"github.com/inkprint/teeshop/internal/config"
)

// Module selects the exclusion strategy from configuration.
var Module = fx.Provide(newStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newStrategy(p strategyParams) Strategy {
	if p.Config.StrictPayments {
		return NewKeyedMutex()
	}
	return Passthrough{}
}
