package order

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// LineItem is one priced, quantified product entry within an order.
// It is an immutable value object: unit price and quantity are fixed at
// construction, so an order's subtotal cannot drift after creation.
type LineItem struct {
	itemID              string
	name                string
	unitPrice           kernel.Money
	quantity            int
	specialInstructions string
	imageURL            string
}

// NewLineItem creates a validated line item.
//
// Validation rules:
//   - name is required
//   - unitPrice must not be negative
//   - quantity must be at least 1
//
// Violations surface as value errors so the transport reports them as a
// malformed order input.
func NewLineItem(
	itemID string,
	name string,
	unitPrice kernel.Money,
	quantity int,
	specialInstructions string,
	imageURL string,
) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("line item name")
	}

	if unitPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"line item unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}

	if quantity < 1 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("line item quantity", quantity, 1, maxLineItemQuantity)
	}

	if quantity > maxLineItemQuantity {
		return LineItem{}, errs.NewValueIsOutOfRangeError("line item quantity", quantity, 1, maxLineItemQuantity)
	}

	return LineItem{
		itemID:              itemID,
		name:                name,
		unitPrice:           unitPrice,
		quantity:            quantity,
		specialInstructions: specialInstructions,
		imageURL:            imageURL,
	}, nil
}

// maxLineItemQuantity bounds a single line so a typo like "1000 pizzas"
// is rejected at the door.
const maxLineItemQuantity = 100

// ItemID returns the menu item identifier.
func (li LineItem) ItemID() string {
	return li.itemID
}

// Name returns the display name of the item.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the price of a single unit.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the ordered unit count.
func (li LineItem) Quantity() int {
	return li.quantity
}

// SpecialInstructions returns the customer's free-text preparation notes.
func (li LineItem) SpecialInstructions() string {
	return li.specialInstructions
}

// ImageURL returns the menu image for the item, if any.
func (li LineItem) ImageURL() string {
	return li.imageURL
}

// Subtotal returns unitPrice multiplied by quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.MultiplyBy(li.quantity)
}
