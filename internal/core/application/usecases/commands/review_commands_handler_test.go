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

func TestCreateReviewCommandHandler_Handle_RequesterReviews(t *testing.T) {
	ctx := t.Context()

	requester := newTestUser(t, "requester@example.com", "DEFAULT_USER")
	order := newRequestedServiceOrder(t, kernel.NewUUID(), requester.ID())

	cmd, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(), order.ID(), requester.ID(),
		"excellent work", 5, []string{"on time"}, []string{"pricey"})
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	orderRepo := new(MockServiceOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*serviceorder.Review")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	review, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating())
	assert.Equal(t, []string{"on time"}, review.Positive())

	reviewRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_StrangerCannotReview(t *testing.T) {
	ctx := t.Context()

	requester := newTestUser(t, "requester@example.com", "DEFAULT_USER")
	stranger := newTestUser(t, "stranger@example.com", "DEFAULT_USER")
	order := newRequestedServiceOrder(t, kernel.NewUUID(), requester.ID())

	cmd, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(), order.ID(), stranger.ID(), "meh", 2, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockServiceOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorizedAccess)
}

func TestCreateReviewCommand_RatingOutOfRange(t *testing.T) {
	_, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "too good", 6, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestUpdateReviewCommandHandler_Handle_ReviewerUpdates(t *testing.T) {
	ctx := t.Context()

	reviewer := newTestUser(t, "reviewer@example.com", "DEFAULT_USER")
	review := newTestReview(t, kernel.NewUUID(), reviewer.ID())

	cmd, err := commands.NewUpdateReviewCommand(
		review.ID(), reviewer.ID(), "changed my mind", 3, nil, []string{"slow follow-up"})
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Get", ctx, review.ID()).Return(review, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Update", mock.Anything, review).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateReviewCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "changed my mind", updated.Content())
	assert.Equal(t, 3, updated.Rating())
}

func TestUpdateReviewCommandHandler_Handle_StrangerCannotUpdate(t *testing.T) {
	ctx := t.Context()

	reviewer := newTestUser(t, "reviewer@example.com", "DEFAULT_USER")
	stranger := newTestUser(t, "stranger@example.com", "DEFAULT_USER")
	review := newTestReview(t, kernel.NewUUID(), reviewer.ID())

	cmd, err := commands.NewUpdateReviewCommand(review.ID(), stranger.ID(), "hijacked", 1, nil, nil)
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Get", ctx, review.ID()).Return(review, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateReviewCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorizedAccess)
	assert.Equal(t, "great service", review.Content())
}

func TestDeleteReviewCommandHandler_Handle_ReviewerDeletes(t *testing.T) {
	ctx := t.Context()

	reviewer := newTestUser(t, "reviewer@example.com", "DEFAULT_USER")
	review := newTestReview(t, kernel.NewUUID(), reviewer.ID())

	cmd, err := commands.NewDeleteReviewCommand(review.ID(), reviewer.ID())
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Get", ctx, review.ID()).Return(review, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Delete", ctx, review.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteReviewCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	reviewRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
