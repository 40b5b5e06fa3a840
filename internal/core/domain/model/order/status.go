package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Preparing ──> InTransit ──> Delivered (terminal)
//	   │            │             │
//	   └────────────┴─────────────┴──────>  Cancelled (terminal)
//
// Beyond excluding exits from the two terminal states, sequencing is
// deliberately permissive: administrators may move an order backward
// (e.g. InTransit -> Preparing) or skip states to correct mistakes.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly placed order.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// InTransit indicates the order has left the store for delivery.
	InTransit

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was called off before delivery.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns the wire representation for every Status value,
// including Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a lowercase wire status ("pending", "preparing",
// "in_transit", "delivered", "cancelled") into a Status.
// Returns an error for any other input; clients sending an unrecognized
// status get a validation failure, never a silent default.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the closed enumeration.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Implements fmt.Stringer and is safe to call on any Status value;
// invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are the two terminal states.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates a transition from the receiver to the target status
// and returns the resulting status.
//
// Rules:
//   - the target must be a member of the closed enumeration
//   - a terminal status (Delivered, Cancelled) admits no transition to a
//     different status
//   - transitioning to the current status is a valid no-op; callers decide
//     whether side effects (notifications) should be suppressed
//
// Any other pair is allowed, including backward and skipping moves.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if target == s {
		return s, nil
	}

	if s.IsTerminal() {
		return Unknown, errs.NewIllegalTransitionError(s.String(), target.String())
	}

	return target, nil
}
