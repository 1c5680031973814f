package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var ErrPerformServiceOrderCommandIsNotConstructed = errors.New(
	"PerformServiceOrderCommand must be created via NewPerformServiceOrderCommand constructor",
)

// PerformServiceOrderCommand represents the responsible user marking a
// service order as carried out.
type PerformServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPerformServiceOrderCommand creates a command to perform a service order.
func NewPerformServiceOrderCommand(orderID, actorID kernel.UUID) (PerformServiceOrderCommand, error) {
	cmd := PerformServiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return PerformServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PerformServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPerformServiceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being performed.
func (c PerformServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the performing user.
func (c PerformServiceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *PerformServiceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PerformServiceOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
