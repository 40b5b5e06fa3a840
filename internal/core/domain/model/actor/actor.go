package actor

import (
	"pizzeria/internal/core/domain/model/kernel"
)

// Actor is the authenticated identity (or absence thereof) attempting an
// operation. The transport resolves tokens to an Actor per request; the core
// trusts the identity and role as given.
//
// The zero value is the anonymous actor: not authenticated, no id, no role.
type Actor struct {
	id            kernel.UUID
	role          Role
	authenticated bool
}

// NewActor creates an authenticated actor with the given identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		authenticated: true,
	}, nil
}

// Anonymous returns the unauthenticated actor.
func Anonymous() Actor {
	return Actor{}
}

// ID returns the actor's identity. Only meaningful for authenticated actors.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role. RoleUnknown for the anonymous actor.
func (a Actor) Role() Role {
	return a.role
}

// IsAuthenticated reports whether the actor carries an identity.
func (a Actor) IsAuthenticated() bool {
	return a.authenticated
}
