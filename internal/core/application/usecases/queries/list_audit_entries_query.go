package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/actor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrListAuditEntriesQueryIsNotConstructed = errors.New(
		"ListAuditEntriesQuery must be created via NewListAuditEntriesQuery constructor",
	)
)

// ListAuditEntriesQuery lists recorded administrative actions.
// Only administrators may read the audit trail.
type ListAuditEntriesQuery struct {
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewListAuditEntriesQuery creates an audit listing query for the given actor.
func NewListAuditEntriesQuery(requestedBy actor.Actor) (ListAuditEntriesQuery, error) {
	return ListAuditEntriesQuery{
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAuditEntriesQuery) Validate() error {
	return q.guard.Validate(ErrListAuditEntriesQueryIsNotConstructed)
}

// RequestedBy returns the actor performing the read.
func (q ListAuditEntriesQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// ListAuditEntriesQueryResponse is one row of the audit trail.
// EntityID is nil for actions that touched no single entity.
type ListAuditEntriesQueryResponse struct {
	ID         kernel.UUID
	AdminID    kernel.UUID
	Action     string
	EntityType string
	EntityID   *kernel.UUID
	Details    string
	CreatedAt  time.Time
}
