package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/actor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrRemoveOrderCommandIsNotConstructed = errors.New(
		"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
	)
)

// RemoveOrderCommand represents an admin_master's request to permanently
// remove an order record. Hard deletion is an operational escape hatch that
// bypasses the lifecycle state machine entirely; it is not a transition.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to hard-delete an order.
func NewRemoveOrderCommand(orderID kernel.UUID, requestedBy actor.Actor) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedBy returns the actor attempting the deletion.
func (c RemoveOrderCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
