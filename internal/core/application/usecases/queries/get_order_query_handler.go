package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order and enforces view access.
//
// The repository lookup runs before the access check on purpose: a customer
// probing another customer's order must receive permission-denied, while a
// genuinely absent id yields not-found. Short-circuiting on access first
// would be cheaper but could not tell those cases apart.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(orders ports.OrderRepository, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, policy: policy}
}

// Handle executes the query and returns the order when access is granted.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// Anonymous callers are rejected before the lookup so an absent id
	// never turns an unauthenticated request into a not-found response.
	if !query.RequestedBy().IsAuthenticated() {
		return nil, errs.NewAuthenticationRequiredError("view order")
	}

	found, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.CanView(query.RequestedBy(), found); err != nil {
		return nil, err
	}

	return found, nil
}
