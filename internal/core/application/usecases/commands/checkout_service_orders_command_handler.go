package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/notifications"
)

// CheckoutServiceOrdersCommandHandler handles service order checkout.
// Every cart item becomes a service order; the responsible user of each
// requested service is notified once per line, so one responsible covering
// several lines receives several emails.
type CheckoutServiceOrdersCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewCheckoutServiceOrdersCommandHandler creates a handler for cart checkout
// operations.
func NewCheckoutServiceOrdersCommandHandler(uowFactory ServiceOrderUoWFactory) CheckoutServiceOrdersCommandHandler {
	return CheckoutServiceOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// All orders are created within a single transaction; either the whole cart
// is persisted or none of it.
func (h *CheckoutServiceOrdersCommandHandler) Handle(
	ctx context.Context, cmd CheckoutServiceOrdersCommand,
) ([]*serviceorder.ServiceOrder, []notifications.Message, error) {
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

	requester, err := uow.UserRepository().Get(ctx, cmd.RequesterID())
	if err != nil {
		return nil, nil, err
	}

	orders := make([]*serviceorder.ServiceOrder, 0, len(cmd.Items()))
	msgs := make([]notifications.Message, 0, len(cmd.Items()))

	for _, item := range cmd.Items() {
		svc, err := uow.ServiceRepository().Get(ctx, item.ServiceID)
		if err != nil {
			return nil, nil, err
		}

		responsible, err := uow.UserRepository().Get(ctx, svc.ResponsibleID())
		if err != nil {
			return nil, nil, err
		}

		order, err := serviceorder.NewServiceOrder(
			item.OrderID,
			item.ServiceID,
			cmd.RequesterID(),
			item.Quantity,
			item.Comment,
		)
		if err != nil {
			return nil, nil, err
		}

		if err = uow.ServiceOrderRepository().Add(ctx, order); err != nil {
			return nil, nil, err
		}

		orders = append(orders, order)
		msgs = append(msgs, notifications.Message{
			To:       responsible.Email(),
			ToName:   responsible.FullName(),
			Subject:  "Um serviço foi solicitado",
			Template: notifications.TemplateServiceRequested,
			Payload: map[string]any{
				"service":   svc.Name(),
				"requester": requester.FullName(),
				"quantity":  order.Quantity(),
				"comment":   order.Comment(),
			},
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return orders, msgs, nil
}
