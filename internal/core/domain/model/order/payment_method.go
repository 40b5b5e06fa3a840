package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// PaymentMethod is the closed set of payment options the store accepts.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is payment in cash on delivery or pickup.
	PaymentCash

	// PaymentCard is payment by card on delivery or pickup.
	PaymentCard

	// PaymentOnline is payment completed through the online gateway.
	PaymentOnline
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentCash:   "cash",
		PaymentCard:   "card",
		PaymentOnline: "online",
	}
}

// PaymentMethodFromString parses a wire payment method ("cash", "card",
// "online") into a PaymentMethod. Returns an error for any other input.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not an accepted payment method", s),
	)
}

// Validate checks the payment method belongs to the accepted set.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not an accepted payment method", p),
		)
	}
	return nil
}

// String returns the lowercase wire name of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}
