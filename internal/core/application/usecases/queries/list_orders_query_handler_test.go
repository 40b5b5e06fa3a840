package queries_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/actor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle_AdminGetsEveryOrder(t *testing.T) {
	ctx := t.Context()
	admin, err := actor.NewActor(kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)
	all := []*order.Order{
		orderOwnedBy(t, kernel.NewUUID()),
		orderOwnedBy(t, kernel.NewUUID()),
	}

	repo := new(MockOrderReader)
	repo.On("GetAll", mock.Anything).Return(all, nil).Once()

	query, err := queries.NewListOrdersQuery(admin)
	require.NoError(t, err)

	h := queries.NewListOrdersQueryHandler(repo, services.NewAccessPolicy())
	result, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "GetByOwner", mock.Anything, mock.Anything)
}

func TestListOrdersQueryHandler_Handle_CustomerIsScopedToOwnOrders(t *testing.T) {
	ctx := t.Context()
	customer := customerActor(t)
	own := []*order.Order{orderOwnedBy(t, customer.ID())}

	repo := new(MockOrderReader)
	repo.On("GetByOwner", mock.Anything, customer.ID()).Return(own, nil).Once()

	query, err := queries.NewListOrdersQuery(customer)
	require.NoError(t, err)

	h := queries.NewListOrdersQueryHandler(repo, services.NewAccessPolicy())
	result, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestListOrdersQueryHandler_Handle_CustomerWithNoOrdersGetsEmptyList(t *testing.T) {
	ctx := t.Context()
	customer := customerActor(t)

	repo := new(MockOrderReader)
	repo.On("GetByOwner", mock.Anything, customer.ID()).Return([]*order.Order{}, nil).Once()

	query, err := queries.NewListOrdersQuery(customer)
	require.NoError(t, err)

	h := queries.NewListOrdersQueryHandler(repo, services.NewAccessPolicy())
	result, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListOrdersQueryHandler_Handle_AnonymousUnauthenticated(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderReader)

	query, err := queries.NewListOrdersQuery(actor.Anonymous())
	require.NoError(t, err)

	h := queries.NewListOrdersQueryHandler(repo, services.NewAccessPolicy())
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthenticationRequired)
	repo.AssertNotCalled(t, "GetAll", mock.Anything)
	repo.AssertNotCalled(t, "GetByOwner", mock.Anything, mock.Anything)
}

func TestListOrdersQueryHandler_Handle_InvalidQuery(t *testing.T) {
	h := queries.NewListOrdersQueryHandler(new(MockOrderReader), services.NewAccessPolicy())
	_, err := h.Handle(t.Context(), queries.ListOrdersQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
