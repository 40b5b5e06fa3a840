package order

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoLineItems is returned when an order is created without any line items.
	ErrNoLineItems = errors.New("order must contain at least one line item")

	// ErrTotalsMismatch is returned when rehydrated monetary fields violate
	// total == subtotal + deliveryFee.
	ErrTotalsMismatch = errors.New("order total does not equal subtotal plus delivery fee")
)

// PickupAddress is the literal delivery-address sentinel a customer sends when
// opting for in-store pickup. Pickup orders always carry a zero delivery fee.
const PickupAddress = "pickup"

// Order is the aggregate root for a customer's purchase request. It owns the
// line items, the derived monetary fields, and the lifecycle status, and is
// the only place status transitions are applied.
//
// Invariants:
//   - total == subtotal + deliveryFee at all times
//   - pickup orders have a zero delivery fee
//   - status is always a member of the closed enumeration, Pending at creation
//   - createdAt is immutable; updatedAt refreshes on every mutation
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	id              kernel.UUID
	ownerID         *kernel.UUID
	lineItems       []LineItem
	subtotal        kernel.Money
	deliveryFee     kernel.Money
	total           kernel.Money
	status          Status
	paymentMethod   PaymentMethod
	deliveryAddress string
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates a new order in Pending status with totals computed from
// the line items and delivery fee. ownerID is nil for guest orders.
//
// Validation:
//   - id must be a constructed UUID
//   - at least one line item
//   - paymentMethod must be accepted
//   - deliveryAddress must be non-empty (or the pickup sentinel)
//   - deliveryFee must not be negative; it is zeroed for pickup orders
func NewOrder(
	id kernel.UUID,
	ownerID *kernel.UUID,
	lineItems []LineItem,
	paymentMethod PaymentMethod,
	deliveryAddress string,
	deliveryFee kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setLineItems(lineItems),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	totals, err := ComputeTotals(lineItems, deliveryFee, o.IsPickup())
	if err != nil {
		return nil, err
	}
	o.subtotal = totals.Subtotal
	o.deliveryFee = totals.DeliveryFee
	o.total = totals.Total

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-deriving
// state, but re-checks every invariant so corrupted rows cannot leak into the
// domain.
func RestoreOrder(
	id kernel.UUID,
	ownerID *kernel.UUID,
	lineItems []LineItem,
	totals Totals,
	status Status,
	paymentMethod PaymentMethod,
	deliveryAddress string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setLineItems(lineItems),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryAddress(deliveryAddress),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if !totals.Total.IsEqual(totals.Subtotal.Add(totals.DeliveryFee)) {
		return nil, ErrTotalsMismatch
	}
	o.subtotal = totals.Subtotal
	o.deliveryFee = totals.DeliveryFee
	o.total = totals.Total

	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// Repositories call this before persisting to reject struct-literal instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the placing user's identifier, or nil for guest orders.
func (o *Order) OwnerID() *kernel.UUID {
	return o.ownerID
}

// LineItems returns a copy of the order's line items.
// Copying keeps the aggregate's contents immutable from the outside.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Subtotal returns the sum of line item prices.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryFee returns the delivery fee; zero for pickup orders.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns subtotal plus delivery fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the chosen payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// DeliveryAddress returns the delivery address, or the pickup sentinel.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// IsPickup reports whether the customer opted for in-store pickup.
func (o *Order) IsPickup() bool {
	return o.deliveryAddress == PickupAddress
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether the order belongs to the given user.
// Guest orders belong to no one.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID != nil && o.ownerID.IsEqual(userID)
}

// ChangeStatus applies the lifecycle state machine to move the order to
// target. Returns true when the status actually changed and updatedAt was
// refreshed; setting the current status again is a successful no-op returning
// false, so retried requests do not spam notifications.
//
// Transitions out of Delivered or Cancelled fail with an illegal-transition
// error; an unknown target fails with a validation error.
func (o *Order) ChangeStatus(target Status) (bool, error) {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return false, err
	}

	if newStatus == o.status {
		return false, nil
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID *kernel.UUID) error {
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return err
		}
		owned := *ownerID
		o.ownerID = &owned
		return nil
	}
	o.ownerID = nil
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrNoLineItems
	}
	items := make([]LineItem, len(lineItems))
	copy(items, lineItems)
	o.lineItems = items
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return fmt.Errorf("restoring order: %w", err)
	}
	o.status = status
	return nil
}
