package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"
	"github.com/lcnogueira/plataforma-sabia/internal/notifications"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// CancelTechnologyOrderCommandHandler handles canceling a technology order.
// The buyer, the technology owner, or a user holding the cancel capability
// may cancel. The counterparty of the acting user receives the notification.
type CancelTechnologyOrderCommandHandler struct {
	uowFactory TechnologyOrderUoWFactory
	evaluator  *services.AccessEvaluator
}

// NewCancelTechnologyOrderCommandHandler creates a handler for order
// cancellation operations.
func NewCancelTechnologyOrderCommandHandler(
	uowFactory TechnologyOrderUoWFactory,
	evaluator *services.AccessEvaluator,
) CancelTechnologyOrderCommandHandler {
	return CancelTechnologyOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
	}
}

// Handle processes the cancel command.
// An actor canceling their own purchase is recorded as "buyer" and the
// technology owner is notified; any other authorized actor is recorded as
// "seller" and the buyer is notified.
func (h *CancelTechnologyOrderCommandHandler) Handle(
	ctx context.Context, cmd CancelTechnologyOrderCommand,
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

	allowed := order.IsBuyer(cmd.ActorID()) ||
		h.evaluator.CanAccess(actor,
			[]access.Capability{access.CancelTechnologyOrders},
			services.ResourceScope(ownerID))
	if !allowed {
		return nil, nil, errs.NewUnauthorizedAccessError(opCancelOrder)
	}

	if err = order.Cancel(cmd.Reason()); err != nil {
		return nil, nil, err
	}

	if err = uow.TechnologyOrderRepository().Update(ctx, order); err != nil {
		return nil, nil, err
	}

	cancelledBy := "seller"
	recipientID := order.BuyerID()
	if order.IsBuyer(cmd.ActorID()) {
		cancelledBy = "buyer"
		recipientID = ownerID
	}

	recipient, err := uow.UserRepository().Get(ctx, recipientID)
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	msgs := []notifications.Message{{
		To:       recipient.Email(),
		ToName:   recipient.FullName(),
		Subject:  "A solicitação de compra foi cancelada",
		Template: notifications.TemplateTechnologyOrderCancelled,
		Payload: map[string]any{
			"technology":   tech.Title(),
			"cancelled_by": cancelledBy,
			"reason":       order.CancellationReason(),
		},
	}}

	return order, msgs, nil
}
