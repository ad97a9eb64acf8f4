package handlers

import (
	"context"

	"github.com/inkprint/teeshop/internal/domain/model"
	"github.com/inkprint/teeshop/internal/usecase"
)

// DesignFacade describes design generation capabilities required by handlers.
type DesignFacade interface {
	CreateDesign(ctx context.Context, prompt, style string, customerEmail *string) (*model.Order, error)
}

// PaymentFacade encapsulates checkout operations exposed via HTTP.
type PaymentFacade interface {
	ProcessPayment(ctx context.Context, req usecase.PaymentRequest) (*model.Order, error)
}

// QueryFacade provides read access to stored orders.
type QueryFacade interface {
	Order(ctx context.Context, orderID string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
}

// RefundFacade processes refund claims.
type RefundFacade interface {
	Refund(ctx context.Context, orderID string, reason *string) (*model.Order, float64, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	DesignFacade
	PaymentFacade
	QueryFacade
	RefundFacade
}
