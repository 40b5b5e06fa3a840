package inmem

import (
	"context"

	"pizzeria/internal/core/ports"
)

// InMemoryUnitOfWorkFactory creates unit of work instances sharing the same
// in-memory repositories. There is no real transaction isolation; commit and
// rollback only track lifecycle correctness so handler code paths behave the
// same as with the database-backed implementation.
type InMemoryUnitOfWorkFactory struct {
	orders *InMemoryOrderRepository
	audit  *InMemoryAuditRepository
}

// NewInMemoryUnitOfWorkFactory creates a factory over the given repositories.
func NewInMemoryUnitOfWorkFactory(
	orders *InMemoryOrderRepository,
	audit *InMemoryAuditRepository,
) *InMemoryUnitOfWorkFactory {
	return &InMemoryUnitOfWorkFactory{orders: orders, audit: audit}
}

// Create produces a new unit of work bound to the shared repositories.
func (f *InMemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &InMemoryUnitOfWork{orders: f.orders, audit: f.audit}
}

// InMemoryUnitOfWork is a non-transactional UnitOfWork for tests and local runs.
type InMemoryUnitOfWork struct {
	orders *InMemoryOrderRepository
	audit  *InMemoryAuditRepository
	active bool
}

// Begin marks the unit of work as active. Repeated calls are safe.
func (uow *InMemoryUnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit ends the unit of work. Changes were already applied on write.
func (uow *InMemoryUnitOfWork) Commit(_ context.Context) error {
	uow.active = false
	return nil
}

// Rollback ends the unit of work without undoing writes.
func (uow *InMemoryUnitOfWork) Rollback(_ context.Context) error {
	uow.active = false
	return nil
}

// OrderRepository returns the shared order repository.
func (uow *InMemoryUnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.orders
}

// AuditRepository returns the shared audit repository.
func (uow *InMemoryUnitOfWork) AuditRepository() ports.AuditRepository {
	return uow.audit
}
