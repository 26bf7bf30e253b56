package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// UnassignOrdersCommandHandler releases outstanding orders a courier can no
// longer serve. Completed assignments are history and never touched.
type UnassignOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnassignOrdersCommandHandler creates a handler for unassignment operations.
func NewUnassignOrdersCommandHandler(uowFactory UoWFactory) UnassignOrdersCommandHandler {
	return UnassignOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassignment command.
// Re-runs the eligibility filter over the courier's outstanding orders and
// deletes the assignments that fail it. Returns the released order ids.
func (h UnassignOrdersCommandHandler) Handle(ctx context.Context, cmd UnassignOrdersCommand) ([]int64, error) {
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

	assignee, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	released, err := shedIneligible(ctx, assignee, uow.OrderRepository(), uow.AssignmentRepository())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return released, nil
}

// shedIneligible removes the courier's outstanding assignments whose orders
// no longer pass the eligibility filter. Shared with the courier update flow,
// which must shed within the same transaction as the profile change.
func shedIneligible(
	ctx context.Context,
	assignee *courier.Courier,
	orderRepo ports.OrderRepository,
	assignmentRepo ports.AssignmentRepository,
) ([]int64, error) {
	outstanding, err := assignmentRepo.GetOutstanding(ctx, assignee.ID())
	if err != nil {
		return nil, err
	}
	if len(outstanding) == 0 {
		return []int64{}, nil
	}

	candidates, err := orderRepo.GetByIDs(ctx, orderIDs(outstanding))
	if err != nil {
		return nil, err
	}

	eligible, err := services.NewEligibilityFilter().Eligible(assignee, candidates)
	if err != nil {
		return nil, err
	}

	keep := make(map[int64]struct{}, len(eligible))
	for _, o := range eligible {
		keep[o.ID()] = struct{}{}
	}

	released := make([]int64, 0, len(outstanding))
	for _, a := range outstanding {
		if _, ok := keep[a.OrderID()]; !ok {
			released = append(released, a.OrderID())
		}
	}

	if len(released) > 0 {
		if err = assignmentRepo.Unassign(ctx, assignee.ID(), released); err != nil {
			return nil, err
		}
	}

	return released, nil
}
