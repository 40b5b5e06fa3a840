package actor

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Role is the closed set of authorization roles an actor can hold.
// Keeping roles as a tagged enumeration (rather than raw strings) lets the
// access policy match exhaustively.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer can place orders and view their own orders.
	RoleCustomer

	// RoleAdmin can view all orders and drive status transitions.
	RoleAdmin

	// RoleAdminMaster holds every admin right plus hard deletion.
	RoleAdminMaster
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:    "customer",
		RoleAdmin:       "admin",
		RoleAdminMaster: "admin_master",
	}
}

// RoleFromString parses a wire role ("customer", "admin", "admin_master").
// Returns an error for any other input.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks the role belongs to the closed set.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase wire name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsAdministrative reports whether the role carries admin rights.
func (r Role) IsAdministrative() bool {
	return r == RoleAdmin || r == RoleAdminMaster
}
