// Package auditlog models the append-only administrative action log.
// An Entry is written whenever an administrator mutates store state (status
// change, hard deletion); entries are never updated or deleted.
package auditlog

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Actions recorded in the audit log.
const (
	ActionOrderStatusChanged = "order_status_changed"
	ActionOrderHardDeleted   = "order_hard_deleted"
	ActionSettingsUpdated    = "settings_updated"
)

// Entity types referenced by audit entries.
const (
	EntityOrder    = "order"
	EntitySettings = "settings"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through NewEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry")

// Entry is one immutable audit record of an administrative mutation.
type Entry struct {
	id         kernel.UUID
	adminID    kernel.UUID
	action     string
	entityType string
	entityID   *kernel.UUID
	details    string
	createdAt  time.Time

	isConstructed bool
}

// NewEntry creates an audit record for an administrative action.
// entityID may be nil for actions not tied to a single entity.
func NewEntry(
	adminID kernel.UUID,
	action string,
	entityType string,
	entityID *kernel.UUID,
	details string,
) (*Entry, error) {
	if err := adminID.Validate(); err != nil {
		return nil, err
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}
	if entityType == "" {
		return nil, errs.NewValueIsRequiredError("entityType")
	}
	if entityID != nil {
		if err := entityID.Validate(); err != nil {
			return nil, err
		}
		owned := *entityID
		entityID = &owned
	}

	return &Entry{
		id:            kernel.NewUUID(),
		adminID:       adminID,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		details:       details,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an audit record from persistence.
func RestoreEntry(
	id kernel.UUID,
	adminID kernel.UUID,
	action string,
	entityType string,
	entityID *kernel.UUID,
	details string,
	createdAt time.Time,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := adminID.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		adminID:       adminID,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		details:       details,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was created through a factory function.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// AdminID returns the administrator who performed the action.
func (e *Entry) AdminID() kernel.UUID {
	return e.adminID
}

// Action returns the recorded action name.
func (e *Entry) Action() string {
	return e.action
}

// EntityType returns the kind of entity the action touched.
func (e *Entry) EntityType() string {
	return e.entityType
}

// EntityID returns the affected entity's id, or nil.
func (e *Entry) EntityID() *kernel.UUID {
	return e.entityID
}

// Details returns the free-text description of the action.
func (e *Entry) Details() string {
	return e.details
}

// CreatedAt returns when the action happened.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}
