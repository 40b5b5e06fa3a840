// Package queries contains read-side operations in the CQRS architecture.
// Order queries read through the repository so access rules run against the
// full aggregate; flat reporting reads (audit log) go straight to the
// database.
package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/actor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order subject to access control.
// Customers see only their own orders; admins see any order.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID, requestedBy actor.Actor) (GetOrderQuery, error) {
	q := GetOrderQuery{
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequestedBy returns the actor performing the read.
func (q GetOrderQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}
