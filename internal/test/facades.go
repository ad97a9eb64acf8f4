package test

import (
	"context"
	"time"

	"github.com/inkprint/teeshop/internal/domain/model"
	"github.com/inkprint/teeshop/internal/usecase"
)

// DesignFacadeStub provides controllable behaviour for the design endpoint.
type DesignFacadeStub struct {
	CreateFn func(context.Context, string, string, *string) (*model.Order, error)
}

// CreateDesign delegates to the provided function or returns a default order.
func (s DesignFacadeStub) CreateDesign(ctx context.Context, prompt, style string, customerEmail *string) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, prompt, style, customerEmail)
	}
	return &model.Order{
		ID:             "order-abc123def456",
		DesignPrompt:   prompt,
		Style:          style,
		ImageReference: "https://images.example/design.png",
		QuotedPrice:    4.99,
		Status:         model.OrderStatusPendingPayment,
		CustomerEmail:  customerEmail,
		CreatedAt:      time.Now(),
	}, nil
}

// PaymentFacadeStub simulates checkout processing.
type PaymentFacadeStub struct {
	ProcessFn func(context.Context, usecase.PaymentRequest) (*model.Order, error)
}

// ProcessPayment executes the configured handler or returns a paid order.
func (s PaymentFacadeStub) ProcessPayment(ctx context.Context, req usecase.PaymentRequest) (*model.Order, error) {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, req)
	}
	paymentID := "ch_mock_" + req.OrderID
	now := time.Now()
	return &model.Order{
		ID:            req.OrderID,
		Status:        model.OrderStatusPaid,
		QuotedPrice:   4.99,
		PaymentID:     &paymentID,
		AmountCharged: &req.ClaimedAmount,
		PaidAt:        &now,
	}, nil
}

// QueryFacadeStub returns predefined orders.
type QueryFacadeStub struct {
	OrderFn  func(context.Context, string) (*model.Order, error)
	OrdersFn func(context.Context) ([]model.Order, error)
}

// Order returns the configured order or a pending default.
func (s QueryFacadeStub) Order(ctx context.Context, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPendingPayment, QuotedPrice: 4.99}, nil
}

// Orders returns the configured order list.
func (s QueryFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "order-abc123def456"}}, nil
}

// RefundFacadeStub simulates refund processing.
type RefundFacadeStub struct {
	RefundFn func(context.Context, string, *string) (*model.Order, float64, error)
}

// Refund executes the configured handler or refunds the quoted price.
func (s RefundFacadeStub) Refund(ctx context.Context, orderID string, reason *string) (*model.Order, float64, error) {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, orderID, reason)
	}
	now := time.Now()
	return &model.Order{
		ID:           orderID,
		Status:       model.OrderStatusRefunded,
		QuotedPrice:  4.99,
		RefundedAt:   &now,
		RefundReason: reason,
	}, 4.99, nil
}

// StorefrontFacadeStub aggregates the individual stubs behind one value.
type StorefrontFacadeStub struct {
	DesignFacadeStub
	PaymentFacadeStub
	QueryFacadeStub
	RefundFacadeStub
}
