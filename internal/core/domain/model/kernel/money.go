package kernel

import (
	"fmt"
	"math"

	"pizzeria/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in cents.
// Storing cents as int64 keeps the order total invariant
// (total == subtotal + deliveryFee) exact; floating point arithmetic would
// drift on sums of prices like 3.99.
//
// The zero value is a valid amount of zero. Negative amounts are
// representable (subtraction results) but rejected by validation wherever the
// domain requires a price or fee.
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromFloat(12.50)
//	fee, _ := kernel.NewMoneyFromFloat(3.99)
//	total := price.Add(fee)
//	fmt.Println(total) // "16.49"
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from an exact amount of cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromFloat converts a decimal amount (as it appears on the wire,
// e.g. 3.99) to Money, rounding to the nearest cent. Returns an error for
// NaN or infinite input.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is not a finite number", amount),
		)
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the raw amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the decimal representation used in JSON responses.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyBy returns the amount multiplied by a quantity.
func (m Money) MultiplyBy(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "28.99".
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}
