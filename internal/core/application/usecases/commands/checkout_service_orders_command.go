package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var (
	ErrCheckoutServiceOrdersCommandIsNotConstructed = errors.New(
		"CheckoutServiceOrdersCommand must be created via NewCheckoutServiceOrdersCommand constructor",
	)
	ErrCartIsEmpty = errors.New("at least one cart item is required")
)

// CartItem is one line of a service order checkout: a service, the desired
// quantity, and an optional comment for the responsible user.
type CartItem struct {
	OrderID   kernel.UUID
	ServiceID kernel.UUID
	Quantity  int
	Comment   string
}

// CheckoutServiceOrdersCommand represents a shopping cart checkout: every
// item becomes an independent service order in "requested" status.
type CheckoutServiceOrdersCommand struct { //nolint:recvcheck //using for validation
	requesterID kernel.UUID
	items       []CartItem

	guard guard.ConstructorGuard
}

// NewCheckoutServiceOrdersCommand creates a command to check out a cart of
// service requests. The cart must not be empty and every item needs valid
// identifiers and a positive quantity.
func NewCheckoutServiceOrdersCommand(
	requesterID kernel.UUID,
	items []CartItem,
) (CheckoutServiceOrdersCommand, error) {
	cmd := CheckoutServiceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequesterID(requesterID),
		cmd.setItems(items),
	); err != nil {
		return CheckoutServiceOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutServiceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutServiceOrdersCommandIsNotConstructed)
}

// RequesterID returns the identifier of the user checking out.
func (c CheckoutServiceOrdersCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Items returns the cart lines.
func (c CheckoutServiceOrdersCommand) Items() []CartItem {
	return c.items
}

func (c *CheckoutServiceOrdersCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}

func (c *CheckoutServiceOrdersCommand) setItems(items []CartItem) error {
	if len(items) == 0 {
		return ErrCartIsEmpty
	}

	for _, item := range items {
		if err := item.OrderID.Validate(); err != nil {
			return err
		}
		if err := item.ServiceID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}
