package inmem

import (
	"context"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// StaticCustomerDirectory implements CustomerDirectory over a fixed map.
// Real deployments resolve addresses against the accounts service; this
// keeps notification wiring functional in tests and local runs.
type StaticCustomerDirectory struct {
	mu     sync.RWMutex
	emails map[kernel.UUID]string
}

// NewStaticCustomerDirectory creates an empty directory.
func NewStaticCustomerDirectory() *StaticCustomerDirectory {
	return &StaticCustomerDirectory{
		emails: make(map[kernel.UUID]string),
	}
}

// Register associates a user id with an email address.
func (d *StaticCustomerDirectory) Register(userID kernel.UUID, email string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.emails[userID] = email
}

// EmailFor returns the email address for the given user.
func (d *StaticCustomerDirectory) EmailFor(_ context.Context, userID kernel.UUID) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	email, ok := d.emails[userID]
	if !ok {
		return "", errs.NewObjectNotFoundError("customer", userID.String())
	}

	return email, nil
}
