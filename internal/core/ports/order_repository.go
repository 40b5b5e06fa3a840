package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must return an errs.ObjectNotFoundError (never panic, never
// a silent nil) when an id is unknown, so callers can distinguish absence
// from infrastructure failure.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns a not-found error when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first. Administrative listings use this.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByOwner retrieves all orders placed by the given user, newest first.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// Delete permanently removes an order record, bypassing the lifecycle
	// state machine. Returns a not-found error when the id is unknown.
	Delete(ctx context.Context, id kernel.UUID) error
}
