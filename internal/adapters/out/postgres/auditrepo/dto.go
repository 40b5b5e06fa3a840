// Package auditrepo persists the append-only administrative action log.
// Rows are inserted once and never updated or deleted, so the repository
// exposes only Append and read operations.
package auditrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/auditlog"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for audit log entries.
type EntryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AdminID    uuid.UUID  `gorm:"type:uuid;index"`
	Action     string     `gorm:"index"`
	EntityType string
	EntityID   *uuid.UUID `gorm:"type:uuid"`
	Details    string
	CreatedAt  time.Time  `gorm:"index;autoCreateTime:false"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry *auditlog.Entry) EntryDTO {
	var entityID *uuid.UUID
	if id := entry.EntityID(); id != nil {
		raw := id.Bytes()
		entityID = &raw
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		AdminID:    entry.AdminID().Bytes(),
		Action:     entry.Action(),
		EntityType: entry.EntityType(),
		EntityID:   entityID,
		Details:    entry.Details(),
		CreatedAt:  entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to an audit entry.
func toDomain(dto EntryDTO) (*auditlog.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	adminID, err := kernel.UUIDFromBytes(dto.AdminID[:])
	if err != nil {
		return nil, err
	}

	var entityID *kernel.UUID
	if dto.EntityID != nil {
		eID, entityErr := kernel.UUIDFromBytes((*dto.EntityID)[:])
		if entityErr != nil {
			return nil, entityErr
		}

		entityID = &eID
	}

	return auditlog.RestoreEntry(
		id,
		adminID,
		dto.Action,
		dto.EntityType,
		entityID,
		dto.Details,
		dto.CreatedAt,
	)
}
