package usecase

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/inkprint/teeshop/internal/domain/errors"
	"github.com/inkprint/teeshop/internal/domain/model"
	"github.com/inkprint/teeshop/internal/domain/repository"
)

// RefundUseCase reverses paid orders. Nobody's identity is checked.
type RefundUseCase struct {
	store  repository.OrderStore
	logger *slog.Logger
}

// NewRefundUseCase constructs RefundUseCase.
func NewRefundUseCase(store repository.OrderStore, logger *slog.Logger) *RefundUseCase {
	return &RefundUseCase{store: store, logger: logger}
}

// Refund moves a paid order to refunded and returns the refunded amount.
// A never-paid order and an already-refunded order fail identically: the
// only guard is that the current status must be paid.
func (u *RefundUseCase) Refund(ctx context.Context, orderID string, reason *string) (*model.Order, float64, error) {
	order, err := u.store.Get(ctx, orderID)
	if err != nil {
		return nil, 0, err
	}

	if order.Status != model.OrderStatusPaid {
		return nil, 0, domainErrors.ErrOrderNotPaid
	}

	now := time.Now().UTC()
	updated, err := u.store.Mutate(ctx, orderID, func(o *model.Order) {
		o.Status = model.OrderStatusRefunded
		o.RefundedAt = &now
		o.RefundReason = reason
	})
	if err != nil {
		return nil, 0, err
	}

	amount := updated.QuotedPrice
	if updated.AmountCharged != nil {
		amount = *updated.AmountCharged
	}

	u.logger.Info("refund processed",
		slog.String("order_id", orderID),
		slog.Float64("refund_amount", amount),
	)
	return updated, amount, nil
}
