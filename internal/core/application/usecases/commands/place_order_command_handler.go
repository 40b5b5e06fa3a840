package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Computes totals from store settings, persists the order in pending status,
// and dispatches a best-effort confirmation notification after commit.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, settings, dispatcher)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("order %s placed, total %s", placed.ID(), placed.Total())
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	settings   ports.SettingsProvider
	dispatcher ports.NotificationDispatcher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, a settings
// provider for the default delivery fee, and a notification dispatcher.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	settings ports.SettingsProvider,
	dispatcher ports.NotificationDispatcher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		dispatcher: dispatcher,
	}
}

// Handle processes the order placement command.
// The delivery fee comes from the current store settings snapshot; pickup
// orders get a zero fee inside the aggregate. The confirmation notification
// fires only after a successful commit and cannot fail the placement.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	fee := h.settings.Settings(ctx).DefaultDeliveryFee

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OwnerID(),
		cmd.LineItems(),
		cmd.PaymentMethod(),
		cmd.DeliveryAddress(),
		fee,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.DispatchOrderPlaced(ctx, newOrder)

	return newOrder, nil
}
