package memory

import (
	"context"
	"sync"

	domainErrors "github.com/inkprint/teeshop/internal/domain/errors"
	"github.com/inkprint/teeshop/internal/domain/model"
)

// Store keeps every order in process memory for the lifetime of the
// service. The mutex only protects the table structure itself; a caller
// that reads an order and writes it back later gets no exclusion for
// that window.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*model.Order
	ids    []string
}

// NewStore creates an empty in-memory order store.
func NewStore() *Store {
	return &Store{orders: make(map[string]*model.Order)}
}

// Insert adds a new order, failing when the id is already taken.
func (s *Store) Insert(_ context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; ok {
		return domainErrors.ErrDuplicateID
	}

	stored := cloneOrder(order)
	s.orders[order.ID] = stored
	s.ids = append(s.ids, order.ID)
	return nil
}

// Get returns a copy of the stored order.
func (s *Store) Get(_ context.Context, id string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneOrder(order), nil
}

// ListAll returns every order in insertion order.
func (s *Store) ListAll(_ context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Order, 0, len(s.ids))
	for _, id := range s.ids {
		result = append(result, *cloneOrder(s.orders[id]))
	}
	return result, nil
}

// Mutate applies fn to the stored order in place and returns the updated
// copy. The update is unconditional: fn sees whatever state the order is
// in at that moment.
func (s *Store) Mutate(_ context.Context, id string, fn func(*model.Order)) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	fn(order)
	return cloneOrder(order), nil
}

func cloneOrder(o *model.Order) *model.Order {
	c := *o
	if o.BillingAddress != nil {
		c.BillingAddress = make(map[string]string, len(o.BillingAddress))
		for k, v := range o.BillingAddress {
			c.BillingAddress[k] = v
		}
	}
	return &c
}
