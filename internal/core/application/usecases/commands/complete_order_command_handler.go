package commands

import (
	"context"
	"time"

	"dispatch/internal/core/ports"
)

// CompleteOrderCommandHandler handles delivery completion reports.
// The delivery duration is measured from the previous completion in the same
// assignment run, or from the run's assign time for the first delivery. This
// makes the recorded durations of one run sum to the courier's driving time.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completion operations.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Fails with errs.ObjectNotFoundError when the (courier, order) pair was never
// assigned, assignment.ErrAlreadyCompleted on a repeated report, and
// assignment.ErrInvalidCompleteTime when the reported time precedes the
// reference point.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	a, err := assignmentRepo.Get(ctx, cmd.CourierID(), cmd.OrderID())
	if err != nil {
		return err
	}

	reference, err := runReference(ctx, assignmentRepo, a.CourierID(), a.AssignTime())
	if err != nil {
		return err
	}

	if err = a.Complete(cmd.CompleteTime(), reference); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// runReference resolves the duration reference point for the courier's
// current run: the latest completion sharing the assign time, or the assign
// time itself when nothing in the run is completed yet.
func runReference(
	ctx context.Context,
	assignmentRepo ports.AssignmentRepository,
	courierID int64,
	assignTime time.Time,
) (time.Time, error) {
	completed, err := assignmentRepo.GetCompletedInRun(ctx, courierID, assignTime)
	if err != nil {
		return time.Time{}, err
	}

	if len(completed) == 0 {
		return assignTime, nil
	}

	last := completed[len(completed)-1]
	return *last.CompleteTime(), nil
}
