package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// NotificationDispatcher fires customer-facing notifications for order
// lifecycle events. Notification is strictly best-effort: implementations
// swallow and log delivery failures, never returning an error that could
// fail or roll back the triggering mutation.
//
// The boolean result reports whether a notification was actually handed to
// the delivery channel; it is false when notifications are disabled by store
// settings, when the order has no reachable owner, or when delivery failed.
type NotificationDispatcher interface {
	// DispatchOrderPlaced notifies the owner that their order was received.
	DispatchOrderPlaced(ctx context.Context, o *order.Order) bool

	// DispatchOrderStatusChanged notifies the owner about the order's new status.
	DispatchOrderStatusChanged(ctx context.Context, o *order.Order) bool
}
