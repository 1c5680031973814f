package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

const opPerformServiceOrder = "PERFORM SERVICE ORDER"

// PerformServiceOrderCommandHandler handles marking a service order as
// performed. Only the service's responsible user or a holder of the perform
// capability may do it.
type PerformServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	evaluator  *services.AccessEvaluator
}

// NewPerformServiceOrderCommandHandler creates a handler for perform
// operations.
func NewPerformServiceOrderCommandHandler(
	uowFactory ServiceOrderUoWFactory,
	evaluator *services.AccessEvaluator,
) PerformServiceOrderCommandHandler {
	return PerformServiceOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
	}
}

// Handle processes the perform command. The transition has no status guard:
// performing an already performed order records it again without error.
func (h *PerformServiceOrderCommandHandler) Handle(
	ctx context.Context, cmd PerformServiceOrderCommand,
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

	svc, err := uow.ServiceRepository().Get(ctx, order.ServiceID())
	if err != nil {
		return nil, err
	}

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	allowed := h.evaluator.CanAccess(actor,
		[]access.Capability{access.PerformServiceOrders},
		services.ResourceScope(svc.ResponsibleID()))
	if !allowed {
		return nil, errs.NewUnauthorizedAccessError(opPerformServiceOrder)
	}

	order.Perform()

	if err = uow.ServiceOrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
