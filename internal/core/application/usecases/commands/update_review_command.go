package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var ErrUpdateReviewCommandIsNotConstructed = errors.New(
	"UpdateReviewCommand must be created via NewUpdateReviewCommand constructor",
)

// UpdateReviewCommand represents the reviewer revising their feedback.
type UpdateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	actorID  kernel.UUID
	content  string
	rating   int
	positive []string
	negative []string

	guard guard.ConstructorGuard
}

// NewUpdateReviewCommand creates a command to update a review. The same
// validation rules as creation apply.
func NewUpdateReviewCommand(
	reviewID kernel.UUID,
	actorID kernel.UUID,
	content string,
	rating int,
	positive []string,
	negative []string,
) (UpdateReviewCommand, error) {
	cmd := UpdateReviewCommand{
		positive: positive,
		negative: negative,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setActorID(actorID),
		cmd.setContent(content),
		cmd.setRating(rating),
	); err != nil {
		return UpdateReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review being updated.
func (c UpdateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// ActorID returns the identifier of the updating user.
func (c UpdateReviewCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Content returns the new body of the review.
func (c UpdateReviewCommand) Content() string {
	return c.content
}

// Rating returns the new rating.
func (c UpdateReviewCommand) Rating() int {
	return c.rating
}

// Positive returns the new positive bullet points.
func (c UpdateReviewCommand) Positive() []string {
	return c.positive
}

// Negative returns the new negative bullet points.
func (c UpdateReviewCommand) Negative() []string {
	return c.negative
}

func (c *UpdateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *UpdateReviewCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateReviewCommand) setContent(content string) error {
	if content == "" {
		return ErrReviewContentIsRequired
	}

	c.content = content
	return nil
}

func (c *UpdateReviewCommand) setRating(rating int) error {
	if rating < serviceorder.MinRating || rating > serviceorder.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating,
			serviceorder.MinRating, serviceorder.MaxRating)
	}

	c.rating = rating
	return nil
}
