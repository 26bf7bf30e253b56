package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// CreateOrdersCommandHandler handles the business logic for order registration.
// The whole batch is persisted in a single transaction: one invalid order
// rejects the batch.
type CreateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrdersCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrdersCommandHandler(uowFactory OrderUoWFactory) CreateOrdersCommandHandler {
	return CreateOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order registration command.
// Converts each entry through the domain constructors and persists the batch
// atomically. Returns the registered aggregates in input order.
func (h CreateOrdersCommandHandler) Handle(ctx context.Context, cmd CreateOrdersCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(cmd.Orders()))
	for _, data := range cmd.Orders() {
		deliveryHours, err := kernel.ParseTimeWindows(data.DeliveryHours)
		if err != nil {
			return nil, err
		}

		o, err := order.NewOrder(data.ID, data.Weight, data.Region, deliveryHours)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	for _, o := range orders {
		if err := orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orders, nil
}
