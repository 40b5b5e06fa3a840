package order

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Totals holds the derived monetary fields of an order.
// The invariant Total == Subtotal + DeliveryFee holds for every value
// produced by ComputeTotals.
type Totals struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
}

// ComputeTotals derives the monetary fields from a set of line items.
// It is pure and deterministic: no clock, no store, no side effects.
//
//   - Subtotal is the sum of unitPrice * quantity over all line items.
//   - For pickup orders the delivery fee is forced to zero regardless of
//     the fee passed in, so Total == Subtotal.
//   - Otherwise Total == Subtotal + DeliveryFee.
//
// Line items are re-validated here even though NewLineItem already rejects
// bad values, because Totals is also the boundary for items rehydrated from
// persistence. A negative price or non-positive quantity fails the whole
// computation.
func ComputeTotals(lineItems []LineItem, deliveryFee kernel.Money, pickup bool) (Totals, error) {
	if deliveryFee.IsNegative() {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"deliveryFee",
			fmt.Errorf("%s is negative", deliveryFee),
		)
	}

	subtotal := kernel.Money{}
	for i, item := range lineItems {
		if item.UnitPrice().IsNegative() {
			return Totals{}, errs.NewValueIsInvalidErrorWithCause(
				"line item unitPrice",
				fmt.Errorf("item %d has negative price %s", i, item.UnitPrice()),
			)
		}
		if item.Quantity() < 1 {
			return Totals{}, errs.NewValueIsOutOfRangeError("line item quantity", item.Quantity(), 1, maxLineItemQuantity)
		}
		subtotal = subtotal.Add(item.Subtotal())
	}

	if pickup {
		deliveryFee = kernel.Money{}
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal.Add(deliveryFee),
	}, nil
}
