package notify

import (
	"context"
	"fmt"
	"log/slog"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// statusMessages maps lifecycle statuses to customer-facing message bodies.
// Statuses without a dedicated template fall back to a generic line, so a
// newly added status never breaks dispatch.
var statusMessages = map[order.Status]string{
	order.Preparing: "Your order is now being prepared.",
	order.InTransit: "Your order is on its way!",
	order.Delivered: "Your order has been delivered. Buon appetito!",
	order.Cancelled: "Your order has been cancelled.",
}

// Dispatcher implements ports.NotificationDispatcher over an EmailSender.
// Dispatch is gated by the store's notification setting and skipped for
// orders without a reachable owner (guest orders).
type Dispatcher struct {
	settings  ports.SettingsProvider
	directory ports.CustomerDirectory
	sender    EmailSender
	logger    *slog.Logger
}

// NewDispatcher creates a notification dispatcher.
func NewDispatcher(
	settings ports.SettingsProvider,
	directory ports.CustomerDirectory,
	sender EmailSender,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		settings:  settings,
		directory: directory,
		sender:    sender,
		logger:    logger.With("component", "notification_dispatcher"),
	}
}

// DispatchOrderPlaced notifies the owner that their order was received.
func (d *Dispatcher) DispatchOrderPlaced(ctx context.Context, o *order.Order) bool {
	body := fmt.Sprintf(
		"Thank you for your order! We have received it and will start preparing shortly. Order total: %s.",
		o.Total())
	return d.dispatch(ctx, o, "Order received", body)
}

// DispatchOrderStatusChanged notifies the owner about the order's new status.
func (d *Dispatcher) DispatchOrderStatusChanged(ctx context.Context, o *order.Order) bool {
	body, ok := statusMessages[o.Status()]
	if !ok {
		body = fmt.Sprintf("Your order status was updated to %s.", o.Status())
	}
	return d.dispatch(ctx, o, "Order update", body)
}

func (d *Dispatcher) dispatch(ctx context.Context, o *order.Order, subject, body string) bool {
	if !d.settings.Settings(ctx).SendCustomerNotifications {
		return false
	}

	ownerID := o.OwnerID()
	if ownerID == nil {
		d.logger.DebugContext(ctx, "Skipping notification for guest order", "order_id", o.ID())
		return false
	}

	email, err := d.directory.EmailFor(ctx, *ownerID)
	if err != nil {
		d.logger.WarnContext(ctx, "Could not resolve notification recipient",
			"order_id", o.ID(), "error", err)
		return false
	}

	if err := d.sender.Send(ctx, email, subject, body); err != nil {
		d.logger.WarnContext(ctx, "Notification delivery failed",
			"order_id", o.ID(), "error", err)
		return false
	}

	d.logger.InfoContext(ctx, "Notification sent", "order_id", o.ID(), "subject", subject)
	return true
}
