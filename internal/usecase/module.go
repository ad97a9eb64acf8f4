package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/inkprint/teeshop/internal/adapter/gateway"
	"github.com/inkprint/teeshop/internal/adapter/imagegen"
	"github.com/inkprint/teeshop/internal/config"
	"github.com/inkprint/teeshop/internal/domain/repository"
	"github.com/inkprint/teeshop/internal/pkg/exclusion"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newDesignUseCase,
	newPaymentUseCase,
	newRefundUseCase,
	NewQueryUseCase,
)

type designParams struct {
	fx.In

	Store  repository.OrderStore
	Images imagegen.Client
	Config *config.Config
	Logger *slog.Logger
}

func newDesignUseCase(p designParams) *DesignUseCase {
	return NewDesignUseCase(p.Store, p.Images, p.Config.QuotedPrice, p.Config.SnapshotLength, p.Logger)
}

type paymentParams struct {
	fx.In

	Store     repository.OrderStore
	Gateway   gateway.Gateway
	Exclusion exclusion.Strategy
	Config    *config.Config
	Logger    *slog.Logger
}

func newPaymentUseCase(p paymentParams) *PaymentUseCase {
	rules := DefaultRules(p.Config.MaxTransactionAmount, p.Config.OverrideMarker, p.Logger)
	return NewPaymentUseCase(p.Store, p.Gateway, rules, p.Exclusion, p.Config.StrictPayments, p.Logger)
}

type refundParams struct {
	fx.In

	Store  repository.OrderStore
	Logger *slog.Logger
}

func newRefundUseCase(p refundParams) *RefundUseCase {
	return NewRefundUseCase(p.Store, p.Logger)
}
