package app

import (
	"context"

	"github.com/inkprint/teeshop/internal/domain/model"
	"github.com/inkprint/teeshop/internal/usecase"
)

// StorefrontFacade aggregates the storefront operations consumed by the
// HTTP layer and the audit worker.
type StorefrontFacade struct {
	designs  *usecase.DesignUseCase
	payments *usecase.PaymentUseCase
	queries  *usecase.QueryUseCase
	refunds  *usecase.RefundUseCase
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(designs *usecase.DesignUseCase, payments *usecase.PaymentUseCase, queries *usecase.QueryUseCase, refunds *usecase.RefundUseCase) *StorefrontFacade {
	return &StorefrontFacade{designs: designs, payments: payments, queries: queries, refunds: refunds}
}

// CreateDesign generates a design and opens a pending order.
func (f *StorefrontFacade) CreateDesign(ctx context.Context, prompt, style string, customerEmail *string) (*model.Order, error) {
	return f.designs.Create(ctx, prompt, style, customerEmail)
}

// ProcessPayment validates and applies a payment against an order.
func (f *StorefrontFacade) ProcessPayment(ctx context.Context, req usecase.PaymentRequest) (*model.Order, error) {
	return f.payments.Process(ctx, req)
}

// Order returns the full record for one order.
func (f *StorefrontFacade) Order(ctx context.Context, orderID string) (*model.Order, error) {
	return f.queries.GetOne(ctx, orderID)
}

// Orders returns every stored order.
func (f *StorefrontFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.queries.ListAll(ctx)
}

// Refund reverses a paid order.
func (f *StorefrontFacade) Refund(ctx context.Context, orderID string, reason *string) (*model.Order, float64, error) {
	return f.refunds.Refund(ctx, orderID, reason)
}
