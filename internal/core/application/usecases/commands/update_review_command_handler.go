package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

const opUpdateReview = "UPDATE SERVICE ORDER REVIEW"

// UpdateReviewCommandHandler handles review updates.
// Only the original reviewer may revise their feedback.
type UpdateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewUpdateReviewCommandHandler creates a handler for review update
// operations.
func NewUpdateReviewCommandHandler(uowFactory ReviewUoWFactory) UpdateReviewCommandHandler {
	return UpdateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review update command.
func (h *UpdateReviewCommandHandler) Handle(
	ctx context.Context, cmd UpdateReviewCommand,
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

	review, err := uow.ReviewRepository().Get(ctx, cmd.ReviewID())
	if err != nil {
		return nil, err
	}

	if !review.IsReviewer(cmd.ActorID()) {
		return nil, errs.NewUnauthorizedAccessError(opUpdateReview)
	}

	if err = review.UpdateContent(cmd.Content(), cmd.Rating(), cmd.Positive(), cmd.Negative()); err != nil {
		return nil, err
	}

	if err = uow.ReviewRepository().Update(ctx, review); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return review, nil
}
