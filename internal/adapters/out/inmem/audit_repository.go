package inmem

import (
	"context"
	"sort"
	"sync"

	"pizzeria/internal/core/domain/model/auditlog"
)

// InMemoryAuditRepository implements AuditRepository over a mutex-guarded slice.
type InMemoryAuditRepository struct {
	mu      sync.RWMutex
	entries []*auditlog.Entry
}

// NewInMemoryAuditRepository creates an empty in-memory audit repository.
func NewInMemoryAuditRepository() *InMemoryAuditRepository {
	return &InMemoryAuditRepository{}
}

// Append stores a new audit entry.
func (r *InMemoryAuditRepository) Append(_ context.Context, entry *auditlog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}

// GetAll retrieves every audit entry, newest first.
func (r *InMemoryAuditRepository) GetAll(_ context.Context) ([]*auditlog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*auditlog.Entry, len(r.entries))
	copy(all, r.entries)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt().After(all[j].CreatedAt())
	})

	return all, nil
}
