package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var ErrDeleteReviewCommandIsNotConstructed = errors.New(
	"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
)

// DeleteReviewCommand represents the reviewer removing their feedback.
type DeleteReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReviewCommand creates a command to delete a review.
func NewDeleteReviewCommand(reviewID, actorID kernel.UUID) (DeleteReviewCommand, error) {
	cmd := DeleteReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setActorID(actorID),
	); err != nil {
		return DeleteReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review being deleted.
func (c DeleteReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// ActorID returns the identifier of the deleting user.
func (c DeleteReviewCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *DeleteReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *DeleteReviewCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
