package services

import (
	"pizzeria/internal/core/domain/model/actor"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// AccessPolicy is the domain service deciding which actor may read or mutate
// a given order.
//
// Rules:
//   - admin and admin_master may view and change the status of any order
//   - a customer may view only orders they own; they have no mutation rights
//   - only admin_master may hard-delete an order
//   - anonymous access is always denied, and denial is never silent:
//     unauthenticated and forbidden outcomes are distinct errors
//
// Note the asymmetry required by the error-propagation policy: a customer
// probing someone else's order gets permission-denied, never not-found, so
// access checks run after the order is loaded.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanView returns nil when the actor may read the given order.
func (AccessPolicy) CanView(a actor.Actor, o *order.Order) error {
	if !a.IsAuthenticated() {
		return errs.NewAuthenticationRequiredError("view order")
	}

	switch a.Role() {
	case actor.RoleAdmin, actor.RoleAdminMaster:
		return nil
	case actor.RoleCustomer:
		if o.IsOwnedBy(a.ID()) {
			return nil
		}
		return errs.NewPermissionDeniedError(a.Role().String(), "view another customer's order")
	default:
		return errs.NewPermissionDeniedError(a.Role().String(), "view order")
	}
}

// CanMutateStatus returns nil when the actor may drive the order lifecycle.
// Only administrative roles qualify; customers never mutate status.
func (AccessPolicy) CanMutateStatus(a actor.Actor) error {
	if !a.IsAuthenticated() {
		return errs.NewAuthenticationRequiredError("change order status")
	}

	if !a.Role().IsAdministrative() {
		return errs.NewPermissionDeniedError(a.Role().String(), "change order status")
	}

	return nil
}

// CanListAllOrders returns nil when the actor may list every order in the
// store. Customers are restricted to their own orders by the list query.
func (AccessPolicy) CanListAllOrders(a actor.Actor) error {
	if !a.IsAuthenticated() {
		return errs.NewAuthenticationRequiredError("list orders")
	}

	if !a.Role().IsAdministrative() {
		return errs.NewPermissionDeniedError(a.Role().String(), "list all orders")
	}

	return nil
}

// CanHardDelete returns nil when the actor may permanently remove an order.
// Hard deletion bypasses the lifecycle state machine and is reserved for
// admin_master.
func (AccessPolicy) CanHardDelete(a actor.Actor) error {
	if !a.IsAuthenticated() {
		return errs.NewAuthenticationRequiredError("delete order")
	}

	if a.Role() != actor.RoleAdminMaster {
		return errs.NewPermissionDeniedError(a.Role().String(), "hard-delete order")
	}

	return nil
}

// CanViewAuditLog returns nil when the actor may read administrative audit
// records.
func (AccessPolicy) CanViewAuditLog(a actor.Actor) error {
	if !a.IsAuthenticated() {
		return errs.NewAuthenticationRequiredError("view audit log")
	}

	if !a.Role().IsAdministrative() {
		return errs.NewPermissionDeniedError(a.Role().String(), "view audit log")
	}

	return nil
}
