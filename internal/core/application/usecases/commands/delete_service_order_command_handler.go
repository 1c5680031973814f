package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

const opDeleteServiceOrder = "DELETE SERVICE ORDER"

// DeleteServiceOrderCommandHandler handles service order deletion.
// Only the requester may withdraw their own order.
type DeleteServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewDeleteServiceOrderCommandHandler creates a handler for service order
// deletion operations.
func NewDeleteServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory) DeleteServiceOrderCommandHandler {
	return DeleteServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
func (h *DeleteServiceOrderCommandHandler) Handle(ctx context.Context, cmd DeleteServiceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.ServiceOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !order.IsRequester(cmd.ActorID()) {
		return errs.NewUnauthorizedAccessError(opDeleteServiceOrder)
	}

	if err = uow.ServiceOrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
