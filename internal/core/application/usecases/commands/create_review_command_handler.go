package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

const opCreateReview = "CREATE SERVICE ORDER REVIEW"

// CreateReviewCommandHandler handles review creation. Only the user who
// requested the service order may review it. Nothing prevents the requester
// from reviewing the same order more than once.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewCreateReviewCommandHandler creates a handler for review creation
// operations.
func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review creation command.
func (h *CreateReviewCommandHandler) Handle(
	ctx context.Context, cmd CreateReviewCommand,
) (*serviceorder.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.ServiceOrderRepository().Get(ctx, cmd.ServiceOrderID())
	if err != nil {
		return nil, err
	}

	if !order.IsRequester(cmd.ReviewerID()) {
		return nil, errs.NewUnauthorizedAccessError(opCreateReview)
	}

	review, err := serviceorder.NewReview(
		cmd.ReviewID(),
		cmd.ServiceOrderID(),
		cmd.ReviewerID(),
		cmd.Content(),
		cmd.Rating(),
		cmd.Positive(),
		cmd.Negative(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ReviewRepository().Add(ctx, review); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return review, nil
}
