package commands_test

import (
	"testing"

	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/commands"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateServiceOrderCommandHandler_Handle_RequesterUpdates(t *testing.T) {
	ctx := t.Context()

	requester := newTestUser(t, "requester@example.com", "DEFAULT_USER")
	order := newRequestedServiceOrder(t, kernel.NewUUID(), requester.ID())

	cmd, err := commands.NewUpdateServiceOrderCommand(order.ID(), requester.ID(), 7, "larger sample")
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	uow := new(MockServiceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockServiceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateServiceOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity())
	assert.Equal(t, "larger sample", updated.Comment())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateServiceOrderCommandHandler_Handle_StrangerCannotUpdate(t *testing.T) {
	ctx := t.Context()

	requester := newTestUser(t, "requester@example.com", "DEFAULT_USER")
	stranger := newTestUser(t, "stranger@example.com", "DEFAULT_USER")
	order := newRequestedServiceOrder(t, kernel.NewUUID(), requester.ID())

	cmd, err := commands.NewUpdateServiceOrderCommand(order.ID(), stranger.ID(), 2, "")
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	uow := new(MockServiceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockServiceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateServiceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorizedAccess)
	assert.Equal(t, 1, order.Quantity())
}

func TestDeleteServiceOrderCommandHandler_Handle_RequesterDeletes(t *testing.T) {
	ctx := t.Context()

	requester := newTestUser(t, "requester@example.com", "DEFAULT_USER")
	order := newRequestedServiceOrder(t, kernel.NewUUID(), requester.ID())

	cmd, err := commands.NewDeleteServiceOrderCommand(order.ID(), requester.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	uow := new(MockServiceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", ctx, order.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockServiceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteServiceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteServiceOrderCommandHandler_Handle_DeleteFails(t *testing.T) {
	ctx := t.Context()

	requester := newTestUser(t, "requester@example.com", "DEFAULT_USER")
	order := newRequestedServiceOrder(t, kernel.NewUUID(), requester.ID())

	cmd, err := commands.NewDeleteServiceOrderCommand(order.ID(), requester.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	uow := new(MockServiceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", ctx, order.ID()).
			Return(errs.NewResourceDeletedError("service order", order.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockServiceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteServiceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrResourceNotDeleted)
}
