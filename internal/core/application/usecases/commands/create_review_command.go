package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var (
	ErrCreateReviewCommandIsNotConstructed = errors.New(
		"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
	)
	ErrReviewContentIsRequired = errors.New("review content is required")
)

// CreateReviewCommand represents the requester leaving feedback on a
// service order.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID       kernel.UUID
	serviceOrderID kernel.UUID
	reviewerID     kernel.UUID
	content        string
	rating         int
	positive       []string
	negative       []string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a command to review a service order.
// Rating must fall within the review rating bounds and content must not be
// empty. Positive and negative bullet lists are optional.
func NewCreateReviewCommand(
	reviewID kernel.UUID,
	serviceOrderID kernel.UUID,
	reviewerID kernel.UUID,
	content string,
	rating int,
	positive []string,
	negative []string,
) (CreateReviewCommand, error) {
	cmd := CreateReviewCommand{
		positive: positive,
		negative: negative,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setServiceOrderID(serviceOrderID),
		cmd.setReviewerID(reviewerID),
		cmd.setContent(content),
		cmd.setRating(rating),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier assigned to the new review.
func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// ServiceOrderID returns the identifier of the reviewed order.
func (c CreateReviewCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

// ReviewerID returns the identifier of the reviewing user.
func (c CreateReviewCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// Content returns the free-text body of the review.
func (c CreateReviewCommand) Content() string {
	return c.content
}

// Rating returns the numeric rating.
func (c CreateReviewCommand) Rating() int {
	return c.rating
}

// Positive returns the positive bullet points.
func (c CreateReviewCommand) Positive() []string {
	return c.positive
}

// Negative returns the negative bullet points.
func (c CreateReviewCommand) Negative() []string {
	return c.negative
}

func (c *CreateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *CreateReviewCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}

	c.serviceOrderID = serviceOrderID
	return nil
}

func (c *CreateReviewCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}

func (c *CreateReviewCommand) setContent(content string) error {
	if content == "" {
		return ErrReviewContentIsRequired
	}

	c.content = content
	return nil
}

func (c *CreateReviewCommand) setRating(rating int) error {
	if rating < serviceorder.MinRating || rating > serviceorder.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating,
			serviceorder.MinRating, serviceorder.MaxRating)
	}

	c.rating = rating
	return nil
}
