package commands_test

import (
	"testing"

	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/commands"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPerformServiceOrderCommandHandler_Handle_ResponsiblePerforms(t *testing.T) {
	ctx := t.Context()

	requester := newTestUser(t, "requester@example.com", "DEFAULT_USER")
	responsible := newTestUser(t, "resp@example.com", "RESEARCHER")
	svc := newTestService(t, responsible.ID())
	order := newRequestedServiceOrder(t, svc.ID(), requester.ID())

	cmd, err := commands.NewPerformServiceOrderCommand(order.ID(), responsible.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	svcRepo := new(MockServiceRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockServiceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("ServiceRepository").Return(svcRepo).Once(),
		svcRepo.On("Get", ctx, svc.ID()).Return(svc, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, responsible.ID()).Return(responsible, nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockServiceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPerformServiceOrderCommandHandler(factory, newEvaluator())
	performed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, serviceorder.Performed, performed.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPerformServiceOrderCommandHandler_Handle_RequesterCannotPerform(t *testing.T) {
	ctx := t.Context()

	requester := newTestUser(t, "requester@example.com", "DEFAULT_USER")
	responsible := newTestUser(t, "resp@example.com", "RESEARCHER")
	svc := newTestService(t, responsible.ID())
	order := newRequestedServiceOrder(t, svc.ID(), requester.ID())

	cmd, err := commands.NewPerformServiceOrderCommand(order.ID(), requester.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	svcRepo := new(MockServiceRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockServiceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("ServiceRepository").Return(svcRepo).Once(),
		svcRepo.On("Get", ctx, svc.ID()).Return(svc, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, requester.ID()).Return(requester, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockServiceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPerformServiceOrderCommandHandler(factory, newEvaluator())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorizedAccess)
	assert.Equal(t, serviceorder.Requested, order.Status())
}

func TestPerformServiceOrderCommandHandler_Handle_PerformTwiceIsIdempotent(t *testing.T) {
	ctx := t.Context()

	requester := newTestUser(t, "requester@example.com", "DEFAULT_USER")
	responsible := newTestUser(t, "resp@example.com", "RESEARCHER")
	svc := newTestService(t, responsible.ID())
	order := newRequestedServiceOrder(t, svc.ID(), requester.ID())
	order.Perform()

	cmd, err := commands.NewPerformServiceOrderCommand(order.ID(), responsible.ID())
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	svcRepo := new(MockServiceRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockServiceOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("ServiceRepository").Return(svcRepo).Once(),
		svcRepo.On("Get", ctx, svc.ID()).Return(svc, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, responsible.ID()).Return(responsible, nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockServiceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPerformServiceOrderCommandHandler(factory, newEvaluator())
	performed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, serviceorder.Performed, performed.Status())
}
