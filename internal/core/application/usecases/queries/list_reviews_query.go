package queries

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var ErrListReviewsQueryIsNotConstructed = errors.New(
	"ListReviewsQuery must be created via NewListReviewsQuery constructor",
)

// ListReviewsFilter narrows the review listing to one service order.
type ListReviewsFilter struct {
	ServiceOrderID *kernel.UUID
}

// ListReviewsQuery retrieves reviews left on service orders for services the
// requester is responsible for.
type ListReviewsQuery struct {
	requester *user.User
	filter    ListReviewsFilter
	page      Page

	guard guard.ConstructorGuard
}

// NewListReviewsQuery creates a review listing query.
func NewListReviewsQuery(
	requester *user.User,
	filter ListReviewsFilter,
	page Page,
) (ListReviewsQuery, error) {
	if requester == nil || requester.Validate() != nil {
		return ListReviewsQuery{}, ErrRequesterIsRequired
	}

	if filter.ServiceOrderID != nil {
		if err := filter.ServiceOrderID.Validate(); err != nil {
			return ListReviewsQuery{}, err
		}
	}

	return ListReviewsQuery{
		requester: requester,
		filter:    filter,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListReviewsQueryIsNotConstructed)
}

// Requester returns the user the listing is scoped to.
func (q ListReviewsQuery) Requester() *user.User {
	return q.requester
}

// Filter returns the listing filter.
func (q ListReviewsQuery) Filter() ListReviewsFilter {
	return q.filter
}

// Page returns the normalized pagination parameters.
func (q ListReviewsQuery) Page() Page {
	return q.page
}

// ReviewReadModel is one row of the review listing.
type ReviewReadModel struct {
	ID             kernel.UUID
	ServiceOrderID kernel.UUID
	ReviewerID     kernel.UUID
	ReviewerName   string
	Content        string
	Rating         int
	Positive       []string
	Negative       []string
}

// ListReviewsResponse carries one page of results plus the total row count.
type ListReviewsResponse struct {
	Reviews []ReviewReadModel
	Total   int64
}
