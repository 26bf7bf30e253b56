package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// UpdateCourierCommandHandler handles partial courier profile updates.
// After the patch is applied, outstanding orders the courier can no longer
// serve are released within the same transaction, so no state is ever visible
// where an assigned order fails the courier's own constraints.
type UpdateCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateCourierCommandHandler creates a handler for courier update operations.
func NewUpdateCourierCommandHandler(uowFactory UoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier update command.
// Returns the patched aggregate. A validation failure in any patched field
// rejects the whole update.
func (h UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	patch, err := buildPatch(cmd)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	assignee, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = assignee.ApplyPatch(patch); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, assignee); err != nil {
		return nil, err
	}

	if _, err = shedIneligible(ctx, assignee, uow.OrderRepository(), uow.AssignmentRepository()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assignee, nil
}

func buildPatch(cmd UpdateCourierCommand) (courier.Patch, error) {
	var patch courier.Patch

	if cmd.Transport() != nil {
		transport, err := courier.ParseTransport(*cmd.Transport())
		if err != nil {
			return courier.Patch{}, err
		}
		patch.Transport = &transport
	}

	patch.Regions = cmd.Regions()

	if cmd.WorkingHours() != nil {
		workingHours, err := kernel.ParseTimeWindows(cmd.WorkingHours())
		if err != nil {
			return courier.Patch{}, err
		}
		patch.WorkingHours = workingHours
	}

	return patch, nil
}
