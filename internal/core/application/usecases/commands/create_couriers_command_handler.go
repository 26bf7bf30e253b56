package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CreateCouriersCommandHandler handles the business logic for courier registration.
// The whole batch is persisted in a single transaction: one invalid courier
// rejects the batch.
type CreateCouriersCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCouriersCommandHandler creates a handler for courier registration.
// Requires a CourierUoWFactory for transactional persistence.
func NewCreateCouriersCommandHandler(uowFactory CourierUoWFactory) CreateCouriersCommandHandler {
	return CreateCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier registration command.
// Converts each entry through the domain constructors and persists the batch
// atomically. Returns the registered aggregates in input order.
func (h CreateCouriersCommandHandler) Handle(ctx context.Context, cmd CreateCouriersCommand) ([]*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(cmd.Couriers()))
	for _, data := range cmd.Couriers() {
		transport, err := courier.ParseTransport(data.Transport)
		if err != nil {
			return nil, err
		}

		workingHours, err := kernel.ParseTimeWindows(data.WorkingHours)
		if err != nil {
			return nil, err
		}

		c, err := courier.NewCourier(data.ID, transport, data.Regions, workingHours)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	for _, c := range couriers {
		if err := courierRepo.Add(ctx, c); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return couriers, nil
}
