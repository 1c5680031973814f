package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var (
	ErrCloseTechnologyOrderCommandIsNotConstructed = errors.New(
		"CloseTechnologyOrderCommand must be created via NewCloseTechnologyOrderCommand constructor",
	)
	ErrUnitValueIsInvalid = errors.New("unit value must be greater than 0")
)

// CloseTechnologyOrderCommand represents closing a negotiation: the seller
// confirms the final quantity and the price per unit agreed with the buyer.
type CloseTechnologyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	quantity  int
	unitValue float64

	guard guard.ConstructorGuard
}

// NewCloseTechnologyOrderCommand creates a command to close a technology
// order. The actor is the authenticated user attempting the operation.
func NewCloseTechnologyOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	quantity int,
	unitValue float64,
) (CloseTechnologyOrderCommand, error) {
	cmd := CloseTechnologyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setQuantity(quantity),
		cmd.setUnitValue(unitValue),
	); err != nil {
		return CloseTechnologyOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseTechnologyOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseTechnologyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being closed.
func (c CloseTechnologyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the user closing the order.
func (c CloseTechnologyOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Quantity returns the final quantity agreed during negotiation.
func (c CloseTechnologyOrderCommand) Quantity() int {
	return c.quantity
}

// UnitValue returns the agreed price per unit.
func (c CloseTechnologyOrderCommand) UnitValue() float64 {
	return c.unitValue
}

func (c *CloseTechnologyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CloseTechnologyOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CloseTechnologyOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CloseTechnologyOrderCommand) setUnitValue(unitValue float64) error {
	if unitValue <= 0 {
		return ErrUnitValueIsInvalid
	}

	c.unitValue = unitValue
	return nil
}
