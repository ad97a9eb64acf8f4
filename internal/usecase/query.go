package usecase

import (
	"context"

	"github.com/inkprint/teeshop/internal/domain/model"
	"github.com/inkprint/teeshop/internal/domain/repository"
)

// QueryUseCase is the read-only lookup over orders. It performs no
// authorization: any caller who knows an id can read the full record,
// and the bulk listing returns everything in the store.
type QueryUseCase struct {
	store repository.OrderStore
}

// NewQueryUseCase constructs QueryUseCase.
func NewQueryUseCase(store repository.OrderStore) *QueryUseCase {
	return &QueryUseCase{store: store}
}

// GetOne returns the full order record.
func (u *QueryUseCase) GetOne(ctx context.Context, orderID string) (*model.Order, error) {
	return u.store.Get(ctx, orderID)
}

// ListAll returns every stored order in insertion order.
func (u *QueryUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.store.ListAll(ctx)
}
