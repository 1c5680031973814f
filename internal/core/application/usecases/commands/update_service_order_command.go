package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var ErrUpdateServiceOrderCommandIsNotConstructed = errors.New(
	"UpdateServiceOrderCommand must be created via NewUpdateServiceOrderCommand constructor",
)

// UpdateServiceOrderCommand represents the requester changing the quantity
// or comment of a pending service order.
type UpdateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	quantity int
	comment  string

	guard guard.ConstructorGuard
}

// NewUpdateServiceOrderCommand creates a command to update a service order.
func NewUpdateServiceOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	quantity int,
	comment string,
) (UpdateServiceOrderCommand, error) {
	cmd := UpdateServiceOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the updating user.
func (c UpdateServiceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Quantity returns the new quantity.
func (c UpdateServiceOrderCommand) Quantity() int {
	return c.quantity
}

// Comment returns the new comment.
func (c UpdateServiceOrderCommand) Comment() string {
	return c.comment
}

func (c *UpdateServiceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateServiceOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateServiceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
