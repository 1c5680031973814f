package techorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the technology order aggregate root.
//
// Invariants:
//   - identifier, technology, and buyer references are valid UUIDs
//   - quantity is positive
//   - status transitions only Open -> Closed or Open -> Canceled
//   - a closed order always carries a positive unit value
//   - a canceled order always carries a cancellation reason
type Order struct {
	id           kernel.UUID
	technologyID kernel.UUID
	buyerID      kernel.UUID

	quantity int
	use      Use
	funding  Funding
	comment  string

	status Status

	// unitValue is the negotiated price per unit, set only on close.
	unitValue float64

	// cancellationReason is set only on cancel.
	cancellationReason string

	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an open technology order for the given buyer and
// technology. All parameters are validated; the comment is optional.
func NewOrder(
	id kernel.UUID,
	technologyID kernel.UUID,
	buyerID kernel.UUID,
	quantity int,
	use Use,
	funding Funding,
	comment string,
) (*Order, error) {
	order := &Order{
		status:        Open,
		comment:       comment,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTechnologyID(technologyID),
		order.setBuyerID(buyerID),
		order.setQuantity(quantity),
		order.setUse(use),
		order.setFunding(funding),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including terminal
// states and close/cancel artifacts. Used only by repository implementations.
func RestoreOrder(
	id kernel.UUID,
	technologyID kernel.UUID,
	buyerID kernel.UUID,
	quantity int,
	use Use,
	funding Funding,
	comment string,
	status Status,
	unitValue float64,
	cancellationReason string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		comment:            comment,
		unitValue:          unitValue,
		cancellationReason: cancellationReason,
		createdAt:          createdAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTechnologyID(technologyID),
		order.setBuyerID(buyerID),
		order.setQuantity(quantity),
		order.setUse(use),
		order.setFunding(funding),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = status

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TechnologyID returns the identifier of the ordered technology.
func (o *Order) TechnologyID() kernel.UUID {
	return o.technologyID
}

// BuyerID returns the identifier of the user who placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Quantity returns the requested quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// Use returns the buyer's intended use.
func (o *Order) Use() Use {
	return o.use
}

// Funding returns the buyer's funding situation.
func (o *Order) Funding() Funding {
	return o.funding
}

// Comment returns the buyer's free-text comment.
func (o *Order) Comment() string {
	return o.comment
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// UnitValue returns the negotiated price per unit. Zero until the order closes.
func (o *Order) UnitValue() float64 {
	return o.unitValue
}

// CancellationReason returns the reason recorded on cancel. Empty otherwise.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsBuyer reports whether the given user placed this order.
func (o *Order) IsBuyer(userID kernel.UUID) bool {
	return o.buyerID.IsEqual(userID)
}

// Close finalizes the order with the negotiated unit value and the final
// quantity.
//
// Business rules:
//   - The order must be in Open status
//   - unitValue must be positive
//   - quantity must be positive
//
// On success the status becomes Closed and both values are recorded.
func (o *Order) Close(unitValue float64, quantity int) error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	if unitValue <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit_value",
			fmt.Errorf("%v is not greater than 0", unitValue))
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	o.status = newStatus
	o.unitValue = unitValue
	o.quantity = quantity
	return nil
}

// Cancel withdraws the order, recording the reason given by whichever party
// canceled.
//
// Business rules:
//   - The order must be in Open status
//   - reason must not be empty
func (o *Order) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation_reason")
	}

	o.status = newStatus
	o.cancellationReason = reason
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTechnologyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.technologyID = id
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.buyerID = id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setUse(use Use) error {
	if err := use.Validate(); err != nil {
		return err
	}
	o.use = use
	return nil
}

func (o *Order) setFunding(funding Funding) error {
	if err := funding.Validate(); err != nil {
		return err
	}
	o.funding = funding
	return nil
}
