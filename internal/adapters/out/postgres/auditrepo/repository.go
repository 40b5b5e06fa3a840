package auditrepo

import (
	"context"

	"pizzeria/internal/core/domain/model/auditlog"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append persists a new audit entry.
func (r *GormAuditRepository) Append(ctx context.Context, entry *auditlog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll retrieves every audit entry, newest first.
func (r *GormAuditRepository) GetAll(ctx context.Context) ([]*auditlog.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).Order("created_at DESC, id").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*auditlog.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
