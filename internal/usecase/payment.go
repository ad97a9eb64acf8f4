package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/inkprint/teeshop/internal/adapter/gateway"
	domainErrors "github.com/inkprint/teeshop/internal/domain/errors"
	"github.com/inkprint/teeshop/internal/domain/model"
	"github.com/inkprint/teeshop/internal/domain/repository"
	"github.com/inkprint/teeshop/internal/pkg/exclusion"
)

// PaymentUseCase validates a payment request against the rule list and
// applies it to the order. In the default configuration the commit is
// unconditional: no status precondition, no compare-and-set, so two
// concurrent payments against the same order can both succeed. Strict
// mode serializes the commit per order and re-checks the status.
type PaymentUseCase struct {
	store     repository.OrderStore
	gateway   gateway.Gateway
	rules     []PaymentRule
	exclusion exclusion.Strategy
	strict    bool
	logger    *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(store repository.OrderStore, gw gateway.Gateway, rules []PaymentRule, strategy exclusion.Strategy, strict bool, logger *slog.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		store:     store,
		gateway:   gw,
		rules:     rules,
		exclusion: strategy,
		strict:    strict,
		logger:    logger,
	}
}

// Process runs the validation policy and commits the payment.
func (u *PaymentUseCase) Process(ctx context.Context, req PaymentRequest) (*model.Order, error) {
	if _, err := u.store.Get(ctx, req.OrderID); err != nil {
		return nil, err
	}

	for _, rule := range u.rules {
		if err := rule.Check(req); err != nil {
			u.logger.Info("payment rejected",
				slog.String("order_id", req.OrderID),
				slog.String("rule", rule.Name()),
			)
			return nil, err
		}
	}

	chargeID, err := u.gateway.Charge(ctx, req.OrderID, req.ClaimedAmount, req.MethodToken)
	if err != nil {
		return nil, err
	}

	var (
		updated   *model.Order
		commitErr error
	)
	u.exclusion.Do(req.OrderID, func() {
		if u.strict {
			current, err := u.store.Get(ctx, req.OrderID)
			if err != nil {
				commitErr = err
				return
			}
			if current.Status != model.OrderStatusPendingPayment {
				commitErr = domainErrors.ErrAlreadyPaid
				return
			}
		}

		now := time.Now().UTC()
		updated, commitErr = u.store.Mutate(ctx, req.OrderID, func(o *model.Order) {
			// amountCharged is the claimed amount, not the quoted price
			amount := req.ClaimedAmount
			o.Status = model.OrderStatusPaid
			o.PaymentID = &chargeID
			o.AmountCharged = &amount
			o.PaidAt = &now
			o.CustomerName = req.CustomerName
			o.BillingAddress = req.BillingAddress
		})
	})
	if commitErr != nil {
		return nil, commitErr
	}

	u.logger.Info("payment processed",
		slog.String("order_id", req.OrderID),
		slog.String("charge_id", chargeID),
		slog.Float64("amount_charged", req.ClaimedAmount),
	)
	return updated, nil
}
