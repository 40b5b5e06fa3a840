// Package order provides the domain model for customer orders in the
// pizzeria ordering system. It implements the Order aggregate root with
// lifecycle management, line items, and derived monetary totals.
//
// The package includes:
//   - Order: the aggregate root owning identity, line items, totals, and lifecycle
//   - Status: a state machine over pending, preparing, in_transit, delivered, cancelled
//   - LineItem: one priced, quantified product entry
//   - PaymentMethod: the closed set of accepted payment options
//   - ComputeTotals: the pure subtotal/fee/total calculator
//
// Key business rules:
//   - total == subtotal + deliveryFee for every order, always
//   - pickup orders (address "pickup") carry a zero delivery fee
//   - delivered and cancelled are terminal; no transition leaves them
//   - sequencing between non-terminal states is intentionally permissive so
//     administrators can correct mistakes
//   - re-applying the current status is a successful no-op
package order
