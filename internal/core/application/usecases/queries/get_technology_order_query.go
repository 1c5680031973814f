package queries

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var ErrGetTechnologyOrderQueryIsNotConstructed = errors.New(
	"GetTechnologyOrderQuery must be created via NewGetTechnologyOrderQuery constructor",
)

// GetTechnologyOrderQuery retrieves a single technology order. Visibility
// follows the listing rules: the buyer, the technology owner, or a holder of
// the listing capability.
type GetTechnologyOrderQuery struct {
	orderID   kernel.UUID
	requester *user.User

	guard guard.ConstructorGuard
}

// NewGetTechnologyOrderQuery creates a query for one technology order.
func NewGetTechnologyOrderQuery(orderID kernel.UUID, requester *user.User) (GetTechnologyOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTechnologyOrderQuery{}, err
	}
	if requester == nil || requester.Validate() != nil {
		return GetTechnologyOrderQuery{}, ErrRequesterIsRequired
	}

	return GetTechnologyOrderQuery{
		orderID:   orderID,
		requester: requester,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTechnologyOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTechnologyOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetTechnologyOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Requester returns the user the lookup is scoped to.
func (q GetTechnologyOrderQuery) Requester() *user.User {
	return q.requester
}
