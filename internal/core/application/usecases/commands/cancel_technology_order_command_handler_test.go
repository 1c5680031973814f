package commands_test

import (
	"testing"

	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/commands"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/notifications"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelTechnologyOrderCommandHandler_Handle_BuyerCancels(t *testing.T) {
	ctx := t.Context()

	owner := newTestUser(t, "owner@example.com", "RESEARCHER")
	buyer := newTestUser(t, "buyer@example.com", "DEFAULT_USER")
	tech := newTestTechnology(t, owner.ID())
	order := newOpenOrder(t, tech.ID(), buyer.ID())

	cmd, err := commands.NewCancelTechnologyOrderCommand(order.ID(), buyer.ID(), "found a better deal")
	require.NoError(t, err)

	orderRepo := new(MockTechnologyOrderRepository)
	techRepo := new(MockTechnologyRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockTechnologyOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TechnologyOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("TechnologyRepository").Return(techRepo).Once(),
		techRepo.On("Get", ctx, tech.ID()).Return(tech, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once(),
		uow.On("TechnologyOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTechnologyOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelTechnologyOrderCommandHandler(factory, newEvaluator())
	canceled, msgs, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, techorder.Canceled, canceled.Status())
	assert.Equal(t, "found a better deal", canceled.CancellationReason())

	require.Len(t, msgs, 1)
	assert.Equal(t, "owner@example.com", msgs[0].To)
	assert.Equal(t, notifications.TemplateTechnologyOrderCancelled, msgs[0].Template)
	assert.Equal(t, "buyer", msgs[0].Payload["cancelled_by"])

	uow.AssertExpectations(t)
}

func TestCancelTechnologyOrderCommandHandler_Handle_OwnerCancels(t *testing.T) {
	ctx := t.Context()

	owner := newTestUser(t, "owner@example.com", "RESEARCHER")
	buyer := newTestUser(t, "buyer@example.com", "DEFAULT_USER")
	tech := newTestTechnology(t, owner.ID())
	order := newOpenOrder(t, tech.ID(), buyer.ID())

	cmd, err := commands.NewCancelTechnologyOrderCommand(order.ID(), owner.ID(), "out of stock")
	require.NoError(t, err)

	orderRepo := new(MockTechnologyOrderRepository)
	techRepo := new(MockTechnologyRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockTechnologyOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TechnologyOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("TechnologyRepository").Return(techRepo).Once(),
		techRepo.On("Get", ctx, tech.ID()).Return(tech, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		uow.On("TechnologyOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTechnologyOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelTechnologyOrderCommandHandler(factory, newEvaluator())
	canceled, msgs, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, techorder.Canceled, canceled.Status())

	require.Len(t, msgs, 1)
	assert.Equal(t, "buyer@example.com", msgs[0].To)
	assert.Equal(t, "seller", msgs[0].Payload["cancelled_by"])
}

func TestCancelTechnologyOrderCommandHandler_Handle_UnauthorizedActor(t *testing.T) {
	ctx := t.Context()

	owner := newTestUser(t, "owner@example.com", "RESEARCHER")
	buyer := newTestUser(t, "buyer@example.com", "DEFAULT_USER")
	stranger := newTestUser(t, "stranger@example.com", "DEFAULT_USER")
	tech := newTestTechnology(t, owner.ID())
	order := newOpenOrder(t, tech.ID(), buyer.ID())

	cmd, err := commands.NewCancelTechnologyOrderCommand(order.ID(), stranger.ID(), "nope")
	require.NoError(t, err)

	orderRepo := new(MockTechnologyOrderRepository)
	techRepo := new(MockTechnologyRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockTechnologyOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TechnologyOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("TechnologyRepository").Return(techRepo).Once(),
		techRepo.On("Get", ctx, tech.ID()).Return(tech, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, stranger.ID()).Return(stranger, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTechnologyOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelTechnologyOrderCommandHandler(factory, newEvaluator())
	_, _, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorizedAccess)
	assert.Equal(t, techorder.Open, order.Status())
}

func TestCancelTechnologyOrderCommand_EmptyReason(t *testing.T) {
	owner := newTestUser(t, "owner@example.com", "RESEARCHER")
	order := newOpenOrder(t, owner.ID(), owner.ID())

	_, err := commands.NewCancelTechnologyOrderCommand(order.ID(), owner.ID(), "")
	require.ErrorIs(t, err, commands.ErrCancellationReasonIsRequired)
}
