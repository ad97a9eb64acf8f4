package gateway

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module exposes the simulated payment gateway to the fx graph.
var Module = fx.Provide(newGateway)

type gatewayParams struct {
	fx.In

	Logger *slog.Logger
}

func newGateway(p gatewayParams) Gateway {
	return NewMock(p.Logger)
}
