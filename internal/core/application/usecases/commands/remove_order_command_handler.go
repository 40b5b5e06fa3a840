package commands

import (
	"context"
	"fmt"

	"pizzeria/internal/core/domain/model/auditlog"
	"pizzeria/internal/core/domain/services"
)

// RemoveOrderCommandHandler handles permanent order removal.
// Only admin_master passes the access policy; the deletion and its audit
// record commit in one transaction. No notification is sent: hard deletion
// is operational cleanup, not a lifecycle event.
type RemoveOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewRemoveOrderCommandHandler creates a handler for hard deletions.
func NewRemoveOrderCommandHandler(uowFactory UoWFactory, policy services.AccessPolicy) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the removal command.
// Access control runs before the existence check, so a non-master admin gets
// permission-denied whether or not the order exists.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanHardDelete(cmd.RequestedBy()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, target.ID()); err != nil {
		return err
	}

	orderID := target.ID()
	entry, err := auditlog.NewEntry(
		cmd.RequestedBy().ID(),
		auditlog.ActionOrderHardDeleted,
		auditlog.EntityOrder,
		&orderID,
		fmt.Sprintf("order in status %s removed", target.Status()),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
