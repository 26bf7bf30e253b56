package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// AssignOrdersResult carries the outcome of one assignment run.
// AssignTime is nil when no orders could be assigned and the courier has
// no outstanding work.
type AssignOrdersResult struct {
	Orders     []*order.Order
	AssignTime *time.Time
}

// AssignOrdersCommandHandler orchestrates the order assignment process.
// A courier with outstanding assignments gets the same set back without a new
// run. Otherwise the unbound orders are filtered by region, delivery windows,
// and carrying capacity, and the survivors are bound in one batch sharing a
// single assign time.
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrdersCommandHandler creates a handler for assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignOrdersCommandHandler(uowFactory UoWFactory) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Repeating the command while assignments are outstanding returns the same
// orders and assign time without creating new rows. An empty eligible set is
// not an error: the result carries no orders and no assign time.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) (AssignOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()
	assignmentRepo := uow.AssignmentRepository()

	assignee, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	outstanding, err := assignmentRepo.GetOutstanding(ctx, assignee.ID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	if len(outstanding) > 0 {
		orders, err := orderRepo.GetByIDs(ctx, orderIDs(outstanding))
		if err != nil {
			return AssignOrdersResult{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return AssignOrdersResult{}, err
		}

		assignTime := outstanding[0].AssignTime()
		return AssignOrdersResult{Orders: orders, AssignTime: &assignTime}, nil
	}

	candidates, err := orderRepo.GetAllUnassigned(ctx)
	if err != nil {
		return AssignOrdersResult{}, err
	}

	eligible, err := services.NewEligibilityFilter().Eligible(assignee, candidates)
	if err != nil {
		return AssignOrdersResult{}, err
	}

	if len(eligible) == 0 {
		if err = uow.Commit(ctx); err != nil {
			return AssignOrdersResult{}, err
		}
		return AssignOrdersResult{Orders: []*order.Order{}}, nil
	}

	// Postgres keeps microsecond precision, so the shared assign time is
	// truncated up front to survive the round trip intact.
	assignTime := time.Now().UTC().Truncate(time.Microsecond)
	coefficient := assignee.Transport().Coefficient()

	assignments := make([]*assignment.Assignment, 0, len(eligible))
	for _, o := range eligible {
		a, err := assignment.NewAssignment(assignee.ID(), o.ID(), assignTime, coefficient)
		if err != nil {
			return AssignOrdersResult{}, err
		}
		assignments = append(assignments, a)
	}

	if err = assignmentRepo.Assign(ctx, assignments); err != nil {
		return AssignOrdersResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	return AssignOrdersResult{Orders: eligible, AssignTime: &assignTime}, nil
}

func orderIDs(assignments []*assignment.Assignment) []int64 {
	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.OrderID())
	}
	return ids
}
