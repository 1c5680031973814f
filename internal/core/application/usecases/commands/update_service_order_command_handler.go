package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

const opUpdateServiceOrder = "UPDATE SERVICE ORDER"

// UpdateServiceOrderCommandHandler handles service order updates.
// Only the requester may change their own order.
type UpdateServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewUpdateServiceOrderCommandHandler creates a handler for service order
// update operations.
func NewUpdateServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory) UpdateServiceOrderCommandHandler {
	return UpdateServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateServiceOrderCommandHandler) Handle(
	ctx context.Context, cmd UpdateServiceOrderCommand,
) (*serviceorder.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.ServiceOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !order.IsRequester(cmd.ActorID()) {
		return nil, errs.NewUnauthorizedAccessError(opUpdateServiceOrder)
	}

	if err = order.UpdateDetails(cmd.Quantity(), cmd.Comment()); err != nil {
		return nil, err
	}

	if err = uow.ServiceOrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
