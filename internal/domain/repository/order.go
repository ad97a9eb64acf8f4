package repository

import (
	"context"

	"github.com/inkprint/teeshop/internal/domain/model"
)

// OrderStore describes persistence operations with orders. The store
// guarantees structural integrity only; it offers no exclusion around a
// caller's read-then-write sequence, that discipline (or its deliberate
// absence) belongs to the caller.
type OrderStore interface {
	Insert(ctx context.Context, order *model.Order) error
	Get(ctx context.Context, id string) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Mutate(ctx context.Context, id string, fn func(*model.Order)) (*model.Order, error)
}
