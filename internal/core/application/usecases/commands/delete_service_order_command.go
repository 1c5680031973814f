package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var ErrDeleteServiceOrderCommandIsNotConstructed = errors.New(
	"DeleteServiceOrderCommand must be created via NewDeleteServiceOrderCommand constructor",
)

// DeleteServiceOrderCommand represents the requester withdrawing a service
// order entirely. Withdrawal removes the row rather than flipping status.
type DeleteServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteServiceOrderCommand creates a command to delete a service order.
func NewDeleteServiceOrderCommand(orderID, actorID kernel.UUID) (DeleteServiceOrderCommand, error) {
	cmd := DeleteServiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return DeleteServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteServiceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being deleted.
func (c DeleteServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the deleting user.
func (c DeleteServiceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *DeleteServiceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteServiceOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
