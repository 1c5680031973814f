package serviceorder

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// ErrReviewIsNotConstructed is returned when a Review instance was not created
// through NewReview or RestoreReview.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is feedback attached to a service order by the requesting user.
// Positive and negative hold short bullet points; content is free text.
type Review struct {
	id             kernel.UUID
	serviceOrderID kernel.UUID
	reviewerID     kernel.UUID

	content  string
	rating   int
	positive []string
	negative []string

	isConstructed bool
}

// NewReview creates a review for the given service order and reviewer.
// Rating must be between MinRating and MaxRating, content must not be empty.
func NewReview(
	id kernel.UUID,
	serviceOrderID kernel.UUID,
	reviewerID kernel.UUID,
	content string,
	rating int,
	positive []string,
	negative []string,
) (*Review, error) {
	review := &Review{
		isConstructed: true,
	}

	if err := errors.Join(
		review.setID(id),
		review.setServiceOrderID(serviceOrderID),
		review.setReviewerID(reviewerID),
		review.setContent(content, rating, positive, negative),
	); err != nil {
		return nil, err
	}

	return review, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(
	id kernel.UUID,
	serviceOrderID kernel.UUID,
	reviewerID kernel.UUID,
	content string,
	rating int,
	positive []string,
	negative []string,
) (*Review, error) {
	return NewReview(id, serviceOrderID, reviewerID, content, rating, positive, negative)
}

// Validate ensures the Review instance was properly constructed.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}

	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ServiceOrderID returns the identifier of the reviewed order.
func (r *Review) ServiceOrderID() kernel.UUID {
	return r.serviceOrderID
}

// ReviewerID returns the identifier of the reviewing user.
func (r *Review) ReviewerID() kernel.UUID {
	return r.reviewerID
}

// Content returns the free-text body of the review.
func (r *Review) Content() string {
	return r.content
}

// Rating returns the numeric rating.
func (r *Review) Rating() int {
	return r.rating
}

// Positive returns the positive bullet points.
func (r *Review) Positive() []string {
	return r.positive
}

// Negative returns the negative bullet points.
func (r *Review) Negative() []string {
	return r.negative
}

// IsReviewer reports whether the given user wrote this review.
func (r *Review) IsReviewer(userID kernel.UUID) bool {
	return r.reviewerID.IsEqual(userID)
}

// UpdateContent replaces the review body, rating, and bullet points.
// The same validation rules as construction apply.
func (r *Review) UpdateContent(content string, rating int, positive, negative []string) error {
	return r.setContent(content, rating, positive, negative)
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setServiceOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.serviceOrderID = id
	return nil
}

func (r *Review) setReviewerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.reviewerID = id
	return nil
}

func (r *Review) setContent(content string, rating int, positive, negative []string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	r.content = content
	r.rating = rating
	r.positive = positive
	r.negative = negative
	return nil
}
