package commands

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/guard"
)

var (
	ErrCreateTechnologyOrderCommandIsNotConstructed = errors.New(
		"CreateTechnologyOrderCommand must be created via NewCreateTechnologyOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// CreateTechnologyOrderCommand represents a buyer's request to acquire a
// technology. Captures quantity, intended use, and funding situation.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateTechnologyOrderCommand(
//	    orderID, technologyID, buyerID, 3,
//	    techorder.UseEnterprise, techorder.FundingWants, "need it by Q3",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateTechnologyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	technologyID kernel.UUID
	buyerID      kernel.UUID
	quantity     int
	use          techorder.Use
	funding      techorder.Funding
	comment      string

	guard guard.ConstructorGuard
}

// NewCreateTechnologyOrderCommand creates a command to place a technology
// order. Validates identifiers, positive quantity, and the use/funding
// enumerations. The comment is optional.
func NewCreateTechnologyOrderCommand(
	orderID kernel.UUID,
	technologyID kernel.UUID,
	buyerID kernel.UUID,
	quantity int,
	use techorder.Use,
	funding techorder.Funding,
	comment string,
) (CreateTechnologyOrderCommand, error) {
	cmd := CreateTechnologyOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTechnologyID(technologyID),
		cmd.setBuyerID(buyerID),
		cmd.setQuantity(quantity),
		cmd.setUse(use),
		cmd.setFunding(funding),
	); err != nil {
		return CreateTechnologyOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTechnologyOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTechnologyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateTechnologyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TechnologyID returns the identifier of the ordered technology.
func (c CreateTechnologyOrderCommand) TechnologyID() kernel.UUID {
	return c.technologyID
}

// BuyerID returns the identifier of the ordering user.
func (c CreateTechnologyOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Quantity returns the requested quantity.
func (c CreateTechnologyOrderCommand) Quantity() int {
	return c.quantity
}

// Use returns the buyer's intended use.
func (c CreateTechnologyOrderCommand) Use() techorder.Use {
	return c.use
}

// Funding returns the buyer's funding situation.
func (c CreateTechnologyOrderCommand) Funding() techorder.Funding {
	return c.funding
}

// Comment returns the buyer's free-text comment.
func (c CreateTechnologyOrderCommand) Comment() string {
	return c.comment
}

func (c *CreateTechnologyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateTechnologyOrderCommand) setTechnologyID(technologyID kernel.UUID) error {
	if err := technologyID.Validate(); err != nil {
		return err
	}

	c.technologyID = technologyID
	return nil
}

func (c *CreateTechnologyOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateTechnologyOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateTechnologyOrderCommand) setUse(use techorder.Use) error {
	if err := use.Validate(); err != nil {
		return err
	}

	c.use = use
	return nil
}

func (c *CreateTechnologyOrderCommand) setFunding(funding techorder.Funding) error {
	if err := funding.Validate(); err != nil {
		return err
	}

	c.funding = funding
	return nil
}
