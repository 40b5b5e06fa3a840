package commands_test

import (
	"context"
	"errors"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/actor"
	"pizzeria/internal/core/domain/model/auditlog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusOrderRepository struct{ mock.Mock }

func (m *MockStatusOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockStatusOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockStatusOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockStatusOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStatusOrderRepository) GetByOwner(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStatusOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, entry *auditlog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditRepository) GetAll(_ context.Context) ([]*auditlog.Entry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	ownerID := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(), &ownerID, testLineItems(t), order.PaymentCard, "12 Via Roma",
		kernel.NewMoneyFromCents(399))
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := pendingOrder(t)
	admin := adminActor(t)
	cmd, err := commands.NewChangeOrderStatusCommand(target.ID(), order.Preparing, admin)
	require.NoError(t, err)

	orders := new(MockStatusOrderRepository)
	audit := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("AuditRepository").Return(audit).Once(),
		audit.On("Append", mock.Anything, mock.AnythingOfType("*auditlog.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("DispatchOrderStatusChanged", mock.Anything, target).Return(true).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewAccessPolicy(), dispatcher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())

	// Audit entry records the transition performed by the admin.
	appended := audit.Calls[0].Arguments.Get(1).(*auditlog.Entry)
	assert.Equal(t, auditlog.ActionOrderStatusChanged, appended.Action())
	assert.Equal(t, admin.ID(), appended.AdminID())
	assert.Equal(t, "pending -> preparing", appended.Details())

	orders.AssertExpectations(t)
	audit.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()
	target := pendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(target.ID(), order.Pending, adminActor(t))
	require.NoError(t, err)

	orders := new(MockStatusOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewAccessPolicy(), dispatcher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Pending, updated.Status())

	// Retries persist nothing and notify nobody.
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "DispatchOrderStatusChanged", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalStatusRejected(t *testing.T) {
	ctx := t.Context()
	target := pendingOrder(t)
	_, err := target.ChangeStatus(order.Delivered)
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(target.ID(), order.Preparing, adminActor(t))
	require.NoError(t, err)

	orders := new(MockStatusOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewAccessPolicy(), new(MockDispatcher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestChangeOrderStatusCommandHandler_Handle_CustomerForbidden(t *testing.T) {
	ctx := t.Context()
	customer, err := actor.NewActor(kernel.NewUUID(), actor.RoleCustomer)
	require.NoError(t, err)
	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Preparing, customer)
	require.NoError(t, err)

	factory := new(MockUoWFactory)

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewAccessPolicy(), new(MockDispatcher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	// Access is rejected before any transaction starts.
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_AnonymousUnauthenticated(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Preparing, actor.Anonymous())
	require.NoError(t, err)

	h := commands.NewChangeOrderStatusCommandHandler(
		new(MockUoWFactory), services.NewAccessPolicy(), new(MockDispatcher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthenticationRequired)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Preparing, adminActor(t))
	require.NoError(t, err)

	orders := new(MockStatusOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("orderID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewAccessPolicy(), new(MockDispatcher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_CommitError_NoNotification(t *testing.T) {
	ctx := t.Context()
	target := pendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(target.ID(), order.Cancelled, adminActor(t))
	require.NoError(t, err)

	orders := new(MockStatusOrderRepository)
	audit := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("AuditRepository").Return(audit).Once(),
		audit.On("Append", mock.Anything, mock.AnythingOfType("*auditlog.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewAccessPolicy(), dispatcher)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	dispatcher.AssertNotCalled(t, "DispatchOrderStatusChanged", mock.Anything, mock.Anything)
}
