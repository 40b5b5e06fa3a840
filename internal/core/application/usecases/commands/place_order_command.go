package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a customer's request to place a new order.
// Line items are already validated value objects; ownerID is nil for guest
// orders. The delivery fee is not part of the command: it comes from store
// settings at handling time.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), &userID, items, order.PaymentCard, "12 Via Roma")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	ownerID         *kernel.UUID
	lineItems       []order.LineItem
	paymentMethod   order.PaymentMethod
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates the order id, owner id (when present), payment method, address,
// and that at least one line item is supplied.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	ownerID *kernel.UUID,
	lineItems []order.LineItem,
	paymentMethod order.PaymentMethod,
	deliveryAddress string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setLineItems(lineItems),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the placing user's id, or nil for guest orders.
func (c PlaceOrderCommand) OwnerID() *kernel.UUID {
	return c.ownerID
}

// LineItems returns the ordered line items.
func (c PlaceOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

// PaymentMethod returns the chosen payment method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// DeliveryAddress returns the delivery address or pickup sentinel.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setOwnerID(ownerID *kernel.UUID) error {
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return err
		}
	}
	c.ownerID = ownerID
	return nil
}

func (c *PlaceOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return order.ErrNoLineItems
	}
	c.lineItems = lineItems
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}
