package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
)

// CustomerDirectory resolves a user id to a reachable email address.
// Account management lives in a separate system; this port is the only
// contact surface the notification dispatcher needs.
type CustomerDirectory interface {
	// EmailFor returns the email address for the given user.
	// Returns an errs.ObjectNotFoundError when the user is unknown or has
	// no address on file.
	EmailFor(ctx context.Context, userID kernel.UUID) (string, error)
}
