package queries

import (
	"errors"
	"time"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var (
	ErrListTechnologyOrdersQueryIsNotConstructed = errors.New(
		"ListTechnologyOrdersQuery must be created via NewListTechnologyOrdersQuery constructor",
	)
	ErrRequesterIsRequired = errors.New("requester is required")
	ErrOrderByIsInvalid    = errors.New("orderBy column is not allowed")
	ErrSortOrderIsInvalid  = errors.New("sort order must be asc or desc")
)

// Sort orders accepted by the listings.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

var technologyOrderColumns = map[string]struct{}{
	"id":         {},
	"created_at": {},
	"status":     {},
	"quantity":   {},
	"unit_value": {},
}

// ListTechnologyOrdersFilter narrows the technology order listing. Zero
// values mean "no filter"; the date bounds default to the platform epoch and
// now.
type ListTechnologyOrdersFilter struct {
	Statuses     []techorder.Status
	TechnologyID *kernel.UUID
	BuyerID      *kernel.UUID
	UnitValue    *float64
	DateFrom     *time.Time
	DateTo       *time.Time

	// FromCurrentUser switches to the buyer view: only the requester's own
	// orders, regardless of role or ownership.
	FromCurrentUser bool

	OrderBy string
	Order   string
}

// ListTechnologyOrdersQuery retrieves technology orders visible to the
// requesting user. Sellers see orders placed on technologies they own;
// holders of the listing capability see everything.
type ListTechnologyOrdersQuery struct {
	requester *user.User
	filter    ListTechnologyOrdersFilter
	page      Page

	guard guard.ConstructorGuard
}

// NewListTechnologyOrdersQuery creates a technology order listing query.
// OrderBy is checked against the allowed column set; empty means id.
func NewListTechnologyOrdersQuery(
	requester *user.User,
	filter ListTechnologyOrdersFilter,
	page Page,
) (ListTechnologyOrdersQuery, error) {
	if requester == nil || requester.Validate() != nil {
		return ListTechnologyOrdersQuery{}, ErrRequesterIsRequired
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "id"
	}
	if _, ok := technologyOrderColumns[filter.OrderBy]; !ok {
		return ListTechnologyOrdersQuery{}, ErrOrderByIsInvalid
	}

	if filter.Order == "" {
		filter.Order = SortAsc
	}
	if filter.Order != SortAsc && filter.Order != SortDesc {
		return ListTechnologyOrdersQuery{}, ErrSortOrderIsInvalid
	}

	for _, st := range filter.Statuses {
		if err := st.Validate(); err != nil {
			return ListTechnologyOrdersQuery{}, err
		}
	}

	return ListTechnologyOrdersQuery{
		requester: requester,
		filter:    filter,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTechnologyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListTechnologyOrdersQueryIsNotConstructed)
}

// Requester returns the user the listing is scoped to.
func (q ListTechnologyOrdersQuery) Requester() *user.User {
	return q.requester
}

// Filter returns the listing filter.
func (q ListTechnologyOrdersQuery) Filter() ListTechnologyOrdersFilter {
	return q.filter
}

// Page returns the normalized pagination parameters.
func (q ListTechnologyOrdersQuery) Page() Page {
	return q.page
}

// TechnologyOrderReadModel is one row of the technology order listing.
type TechnologyOrderReadModel struct {
	ID                 kernel.UUID
	TechnologyID       kernel.UUID
	TechnologyTitle    string
	BuyerID            kernel.UUID
	Quantity           int
	Use                string
	Funding            string
	Comment            string
	Status             string
	UnitValue          float64
	CancellationReason string
	CreatedAt          time.Time
}

// ListTechnologyOrdersResponse carries one page of results plus the total
// row count for pagination headers.
type ListTechnologyOrdersResponse struct {
	Orders []TechnologyOrderReadModel
	Total  int64
}
