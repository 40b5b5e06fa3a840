package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/auditlog"
)

// AuditRepository defines the persistence contract for the append-only
// administrative action log. Entries are never updated or deleted.
type AuditRepository interface {
	// Append persists a new audit entry.
	Append(ctx context.Context, entry *auditlog.Entry) error

	// GetAll retrieves every audit entry, newest first.
	GetAll(ctx context.Context) ([]*auditlog.Entry, error)
}
