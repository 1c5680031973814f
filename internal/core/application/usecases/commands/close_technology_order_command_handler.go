package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"
	"github.com/lcnogueira/plataforma-sabia/internal/notifications"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// Operation names used in authorization and status transition errors.
const (
	opCloseOrder  = "CLOSE ORDER"
	opCancelOrder = "CANCEL ORDER"
)

// CloseTechnologyOrderCommandHandler handles closing a technology order.
// Only the technology owner or a user holding the close capability may close
// an order. The buyer is notified with the agreed values.
type CloseTechnologyOrderCommandHandler struct {
	uowFactory TechnologyOrderUoWFactory
	evaluator  *services.AccessEvaluator
}

// NewCloseTechnologyOrderCommandHandler creates a handler for order closing
// operations.
func NewCloseTechnologyOrderCommandHandler(
	uowFactory TechnologyOrderUoWFactory,
	evaluator *services.AccessEvaluator,
) CloseTechnologyOrderCommandHandler {
	return CloseTechnologyOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
	}
}

// Handle processes the close command.
// Loads the order and its technology, authorizes the actor against the
// technology owner, applies the status transition, and builds the buyer
// notification with the total formatted in reais.
func (h *CloseTechnologyOrderCommandHandler) Handle(
	ctx context.Context, cmd CloseTechnologyOrderCommand,
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

	order, err := uow.TechnologyOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}

	tech, err := uow.TechnologyRepository().Get(ctx, order.TechnologyID())
	if err != nil {
		return nil, nil, err
	}

	ownerID, err := tech.Owner()
	if err != nil {
		return nil, nil, err
	}

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, nil, err
	}

	allowed := h.evaluator.CanAccess(actor,
		[]access.Capability{access.CloseTechnologyOrders},
		services.ResourceScope(ownerID))
	if !allowed {
		return nil, nil, errs.NewUnauthorizedAccessError(opCloseOrder)
	}

	if err = order.Close(cmd.UnitValue(), cmd.Quantity()); err != nil {
		return nil, nil, err
	}

	if err = uow.TechnologyOrderRepository().Update(ctx, order); err != nil {
		return nil, nil, err
	}

	buyer, err := uow.UserRepository().Get(ctx, order.BuyerID())
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	msgs := []notifications.Message{{
		To:       buyer.Email(),
		ToName:   buyer.FullName(),
		Subject:  "A sua solicitação de compra foi fechada",
		Template: notifications.TemplateTechnologyOrderClosed,
		Payload: map[string]any{
			"technology": tech.Title(),
			"quantity":   order.Quantity(),
			"unit_value": notifications.FormatBRL(order.UnitValue()),
			"total":      notifications.FormatBRL(order.UnitValue() * float64(order.Quantity())),
		},
	}}

	return order, msgs, nil
}
