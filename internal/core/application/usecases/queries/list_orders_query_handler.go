package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// ListOrdersQueryHandler lists orders scoped by the caller's role.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(orders ports.OrderRepository, policy services.AccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, policy: policy}
}

// Handle executes the query. Administrators see every order, customers are
// silently narrowed to their own orders rather than rejected.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requestedBy := query.RequestedBy()
	if !requestedBy.IsAuthenticated() {
		return nil, errs.NewAuthenticationRequiredError("list orders")
	}

	if err := h.policy.CanListAllOrders(requestedBy); err == nil {
		return h.orders.GetAll(ctx)
	}

	return h.orders.GetByOwner(ctx, requestedBy.ID())
}
