package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/actor"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists orders visible to the requesting actor.
// Administrators receive every order; customers receive only their own.
type ListOrdersQuery struct {
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query for the given actor.
func NewListOrdersQuery(requestedBy actor.Actor) (ListOrdersQuery, error) {
	return ListOrdersQuery{
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// RequestedBy returns the actor performing the read.
func (q ListOrdersQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}
