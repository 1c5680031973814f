package queries

import (
	"errors"
	"time"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var ErrListServiceOrdersQueryIsNotConstructed = errors.New(
	"ListServiceOrdersQuery must be created via NewListServiceOrdersQuery constructor",
)

var serviceOrderColumns = map[string]struct{}{
	"id":         {},
	"created_at": {},
	"status":     {},
	"quantity":   {},
}

// ListServiceOrdersFilter narrows the service order listing.
type ListServiceOrdersFilter struct {
	Statuses []serviceorder.Status
	DateFrom *time.Time
	DateTo   *time.Time

	// FromCurrentUser switches to the requester view: only orders the
	// requester placed themselves.
	FromCurrentUser bool

	OrderBy string
	Order   string
}

// ListServiceOrdersQuery retrieves service orders visible to the requesting
// user. Responsibles see orders placed on their services; holders of the
// listing capability see everything.
type ListServiceOrdersQuery struct {
	requester *user.User
	filter    ListServiceOrdersFilter
	page      Page

	guard guard.ConstructorGuard
}

// NewListServiceOrdersQuery creates a service order listing query.
func NewListServiceOrdersQuery(
	requester *user.User,
	filter ListServiceOrdersFilter,
	page Page,
) (ListServiceOrdersQuery, error) {
	if requester == nil || requester.Validate() != nil {
		return ListServiceOrdersQuery{}, ErrRequesterIsRequired
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "id"
	}
	if _, ok := serviceOrderColumns[filter.OrderBy]; !ok {
		return ListServiceOrdersQuery{}, ErrOrderByIsInvalid
	}

	if filter.Order == "" {
		filter.Order = SortAsc
	}
	if filter.Order != SortAsc && filter.Order != SortDesc {
		return ListServiceOrdersQuery{}, ErrSortOrderIsInvalid
	}

	for _, st := range filter.Statuses {
		if err := st.Validate(); err != nil {
			return ListServiceOrdersQuery{}, err
		}
	}

	return ListServiceOrdersQuery{
		requester: requester,
		filter:    filter,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListServiceOrdersQueryIsNotConstructed)
}

// Requester returns the user the listing is scoped to.
func (q ListServiceOrdersQuery) Requester() *user.User {
	return q.requester
}

// Filter returns the listing filter.
func (q ListServiceOrdersQuery) Filter() ListServiceOrdersFilter {
	return q.filter
}

// Page returns the normalized pagination parameters.
func (q ListServiceOrdersQuery) Page() Page {
	return q.page
}

// ServiceOrderReadModel is one row of the service order listing.
type ServiceOrderReadModel struct {
	ID          kernel.UUID
	ServiceID   kernel.UUID
	ServiceName string
	RequesterID kernel.UUID
	Quantity    int
	Comment     string
	Status      string
	CreatedAt   time.Time
}

// ListServiceOrdersResponse carries one page of results plus the total row
// count for pagination headers.
type ListServiceOrdersResponse struct {
	Orders []ServiceOrderReadModel
	Total  int64
}
