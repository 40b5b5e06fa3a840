package queries

import (
	"context"
	"database/sql"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAuditEntriesQueryHandler reads the audit trail straight from the
// database. The trail is append-only reporting data, so the read bypasses
// the repository layer and scans flat rows.
type ListAuditEntriesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListAuditEntriesQueryHandler creates a handler for audit trail reads.
// Requires a GORM database connection for query execution.
func NewListAuditEntriesQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListAuditEntriesQueryHandler {
	return ListAuditEntriesQueryHandler{db: db, policy: policy}
}

// Handle executes the query and returns audit rows newest first.
func (h ListAuditEntriesQueryHandler) Handle(
	ctx context.Context,
	query ListAuditEntriesQuery,
) ([]ListAuditEntriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanViewAuditLog(query.RequestedBy()); err != nil {
		return nil, err
	}

	entries := make([]ListAuditEntriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			admin_id,
			action,
			entity_type,
			entity_id,
			details,
			created_at
		FROM audit_entries
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryResp ListAuditEntriesQueryResponse
		var id, adminID uuid.UUID
		var entityID uuid.NullUUID
		var details sql.NullString
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&adminID,
			&entryResp.Action,
			&entryResp.EntityType,
			&entityID,
			&details,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entryResp.ID = entryID

		entryAdminID, idErr := kernel.UUIDFromBytes(adminID[:])
		if idErr != nil {
			return nil, idErr
		}
		entryResp.AdminID = entryAdminID

		if entityID.Valid {
			affectedID, idErr := kernel.UUIDFromBytes(entityID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			entryResp.EntityID = &affectedID
		}

		entryResp.Details = details.String
		entryResp.CreatedAt = createdAt
		entries = append(entries, entryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
