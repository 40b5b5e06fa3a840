// Package inmem provides in-memory implementations of the persistence ports.
// Used by handler tests and local development runs where a real database
// is unnecessary. All implementations are safe for concurrent use.
package inmem

import (
	"context"
	"sort"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// InMemoryOrderRepository implements OrderRepository over a mutex-guarded map.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// Add stores a new order.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order already exists")
	}

	r.orders[aggregate.ID()] = aggregate
	return nil
}

// Update replaces an existing order.
func (r *InMemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.orders[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves an order by ID.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	found, exists := r.orders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return found, nil
}

// GetAll retrieves every order, newest first.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		all = append(all, o)
	}
	sortNewestFirst(all)

	return all, nil
}

// GetByOwner retrieves all orders placed by the given user, newest first.
func (r *InMemoryOrderRepository) GetByOwner(_ context.Context, ownerID kernel.UUID) ([]*order.Order, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make([]*order.Order, 0)
	for _, o := range r.orders {
		if o.IsOwnedBy(ownerID) {
			owned = append(owned, o)
		}
	}
	sortNewestFirst(owned)

	return owned, nil
}

// Delete permanently removes an order.
func (r *InMemoryOrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[id]; !exists {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	delete(r.orders, id)
	return nil
}

func sortNewestFirst(orders []*order.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
}
