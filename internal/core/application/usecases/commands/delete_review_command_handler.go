package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

const opDeleteReview = "DELETE SERVICE ORDER REVIEW"

// DeleteReviewCommandHandler handles review deletion.
// Only the original reviewer may remove their feedback.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewDeleteReviewCommandHandler creates a handler for review deletion
// operations.
func NewDeleteReviewCommandHandler(uowFactory ReviewUoWFactory) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review deletion command.
func (h *DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	review, err := uow.ReviewRepository().Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	if !review.IsReviewer(cmd.ActorID()) {
		return errs.NewUnauthorizedAccessError(opDeleteReview)
	}

	if err = uow.ReviewRepository().Delete(ctx, cmd.ReviewID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
