package gateway

import (
	"context"
	"log/slog"
)

// Gateway charges a payment method. A production implementation would
// call out to the processor and surface declines as ErrCardDeclined;
// the reference deployment wires the mock, which never declines.
type Gateway interface {
	Charge(ctx context.Context, orderID string, amount float64, methodToken string) (string, error)
}

// Mock simulates the processor with deterministic charge identifiers.
type Mock struct {
	logger *slog.Logger
}

// NewMock creates the simulated gateway.
func NewMock(logger *slog.Logger) *Mock {
	return &Mock{logger: logger}
}

// Charge accepts every request and derives the charge id from the order id.
func (g *Mock) Charge(_ context.Context, orderID string, amount float64, _ string) (string, error) {
	chargeID := "ch_mock_" + orderID
	g.logger.Info("simulated charge",
		slog.String("order_id", orderID),
		slog.String("charge_id", chargeID),
		slog.Float64("amount", amount),
	)
	return chargeID, nil
}
