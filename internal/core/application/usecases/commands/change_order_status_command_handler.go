package commands

import (
	"context"
	"fmt"

	"pizzeria/internal/core/domain/model/auditlog"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// ChangeOrderStatusCommandHandler drives the order lifecycle state machine.
//
// Handling order:
//  1. access control (forbidden/unauthenticated before anything else)
//  2. load the order (not-found only for genuinely absent ids)
//  3. apply the state machine (illegal transitions rejected by the aggregate)
//  4. persist the order and its audit record in one transaction
//  5. after commit, dispatch a best-effort status notification; a same-status
//     no-op produces zero notifications
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	dispatcher ports.NotificationDispatcher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	policy services.AccessPolicy,
	dispatcher ports.NotificationDispatcher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		dispatcher: dispatcher,
	}
}

// Handle processes the status change command and returns the updated order.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanMutateStatus(cmd.RequestedBy()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := target.Status()
	changed, err := target.ChangeStatus(cmd.TargetStatus())
	if err != nil {
		return nil, err
	}

	if !changed {
		// Same-status retry: nothing to persist, nothing to notify.
		return target, nil
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	orderID := target.ID()
	entry, err := auditlog.NewEntry(
		cmd.RequestedBy().ID(),
		auditlog.ActionOrderStatusChanged,
		auditlog.EntityOrder,
		&orderID,
		fmt.Sprintf("%s -> %s", previous, target.Status()),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.DispatchOrderStatusChanged(ctx, target)

	return target, nil
}
