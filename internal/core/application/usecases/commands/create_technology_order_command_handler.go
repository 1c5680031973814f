package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/notifications"
)

// CreateTechnologyOrderCommandHandler handles technology order placement.
// Persists the order in "open" status and prepares a notification for the
// technology owner, returned as data so the caller can dispatch it after
// the transaction commits.
type CreateTechnologyOrderCommandHandler struct {
	uowFactory TechnologyOrderUoWFactory
}

// NewCreateTechnologyOrderCommandHandler creates a handler for order
// placement operations.
func NewCreateTechnologyOrderCommandHandler(uowFactory TechnologyOrderUoWFactory) CreateTechnologyOrderCommandHandler {
	return CreateTechnologyOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Verifies the technology exists, creates the order in "open" status, and
// builds the owner notification. Returns the created order and the pending
// notification messages.
func (h *CreateTechnologyOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateTechnologyOrderCommand,
) (*techorder.Order, []notifications.Message, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tech, err := uow.TechnologyRepository().Get(ctx, cmd.TechnologyID())
	if err != nil {
		return nil, nil, err
	}

	buyer, err := uow.UserRepository().Get(ctx, cmd.BuyerID())
	if err != nil {
		return nil, nil, err
	}

	ownerID, err := tech.Owner()
	if err != nil {
		return nil, nil, err
	}

	owner, err := uow.UserRepository().Get(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	order, err := techorder.NewOrder(
		cmd.OrderID(),
		cmd.TechnologyID(),
		cmd.BuyerID(),
		cmd.Quantity(),
		cmd.Use(),
		cmd.Funding(),
		cmd.Comment(),
	)
	if err != nil {
		return nil, nil, err
	}

	if err = uow.TechnologyOrderRepository().Add(ctx, order); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	msgs := []notifications.Message{{
		To:       owner.Email(),
		ToName:   owner.FullName(),
		Subject:  "Uma nova solicitação de compra foi feita",
		Template: notifications.TemplateTechnologyOrderReceived,
		Payload: map[string]any{
			"technology": tech.Title(),
			"buyer":      buyer.FullName(),
			"quantity":   order.Quantity(),
			"use":        order.Use().String(),
			"funding":    order.Funding().String(),
			"comment":    order.Comment(),
		},
	}}

	return order, msgs, nil
}
