package serviceorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// ErrServiceOrderIsNotConstructed is returned when a ServiceOrder instance was
// not created through NewServiceOrder or RestoreServiceOrder.
var ErrServiceOrderIsNotConstructed = errors.New("ServiceOrder must be created via NewServiceOrder constructor")

// ServiceOrder is a request for a service performed by a responsible user.
//
// Invariants:
//   - identifier, service, and requester references are valid UUIDs
//   - quantity is positive
type ServiceOrder struct {
	id        kernel.UUID
	serviceID kernel.UUID
	userID    kernel.UUID

	quantity int
	comment  string
	status   Status

	createdAt time.Time

	isConstructed bool
}

// NewServiceOrder creates a service order in the requested status.
func NewServiceOrder(
	id kernel.UUID,
	serviceID kernel.UUID,
	userID kernel.UUID,
	quantity int,
	comment string,
) (*ServiceOrder, error) {
	order := &ServiceOrder{
		status:        Requested,
		comment:       comment,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setServiceID(serviceID),
		order.setUserID(userID),
		order.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreServiceOrder reconstructs a service order from persistence.
func RestoreServiceOrder(
	id kernel.UUID,
	serviceID kernel.UUID,
	userID kernel.UUID,
	quantity int,
	comment string,
	status Status,
	createdAt time.Time,
) (*ServiceOrder, error) {
	order := &ServiceOrder{
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setServiceID(serviceID),
		order.setUserID(userID),
		order.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = status

	return order, nil
}

// Validate ensures the ServiceOrder instance was properly constructed.
func (o *ServiceOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrServiceOrderIsNotConstructed
	}

	return nil
}

// ID returns the order's unique identifier.
func (o *ServiceOrder) ID() kernel.UUID {
	return o.id
}

// ServiceID returns the identifier of the requested service.
func (o *ServiceOrder) ServiceID() kernel.UUID {
	return o.serviceID
}

// UserID returns the identifier of the requesting user.
func (o *ServiceOrder) UserID() kernel.UUID {
	return o.userID
}

// Quantity returns the requested quantity.
func (o *ServiceOrder) Quantity() int {
	return o.quantity
}

// Comment returns the requester's free-text comment.
func (o *ServiceOrder) Comment() string {
	return o.comment
}

// Status returns the current lifecycle state.
func (o *ServiceOrder) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *ServiceOrder) CreatedAt() time.Time {
	return o.createdAt
}

// IsRequester reports whether the given user placed this order.
func (o *ServiceOrder) IsRequester(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// Perform marks the order as performed.
//
// There is deliberately no guard on the prior status: performing an already
// performed order is a no-op repeat, matching how checkout flows retry the
// operation. See the repository design notes for the product question around
// this behavior.
func (o *ServiceOrder) Perform() {
	o.status = Performed
}

// UpdateDetails changes the requested quantity and comment.
// Quantity must remain positive.
func (o *ServiceOrder) UpdateDetails(quantity int, comment string) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	o.quantity = quantity
	o.comment = comment
	return nil
}

func (o *ServiceOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ServiceOrder) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.serviceID = id
	return nil
}

func (o *ServiceOrder) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.userID = id
	return nil
}

func (o *ServiceOrder) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
