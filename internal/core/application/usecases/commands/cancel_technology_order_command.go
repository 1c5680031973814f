package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var (
	ErrCancelTechnologyOrderCommandIsNotConstructed = errors.New(
		"CancelTechnologyOrderCommand must be created via NewCancelTechnologyOrderCommand constructor",
	)
	ErrCancellationReasonIsRequired = errors.New("cancellation reason is required")
)

// CancelTechnologyOrderCommand represents withdrawing an open negotiation.
// Either party may cancel; the reason is recorded and relayed to the other
// party.
type CancelTechnologyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelTechnologyOrderCommand creates a command to cancel a technology
// order. The reason must not be empty.
func NewCancelTechnologyOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	reason string,
) (CancelTechnologyOrderCommand, error) {
	cmd := CancelTechnologyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setReason(reason),
	); err != nil {
		return CancelTechnologyOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTechnologyOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelTechnologyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being canceled.
func (c CancelTechnologyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the canceling user.
func (c CancelTechnologyOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the cancellation reason.
func (c CancelTechnologyOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelTechnologyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelTechnologyOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CancelTechnologyOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancellationReasonIsRequired
	}

	c.reason = reason
	return nil
}
