package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentRepository defines the persistence contract for the
// courier-order relation. It covers both the read side used for selection
// and the write side: assignment rows are created, deleted, and completed
// only through this interface.
type AssignmentRepository interface {
	// Get retrieves the single assignment row for the (courier, order)
	// pair. Returns errs.ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, courierID, orderID int64) (*assignment.Assignment, error)

	// GetOutstanding retrieves the courier's assignments with no
	// completion yet, ordered by assign_time ascending. Reads take a row
	// lock when called inside a transaction so a concurrent assign cannot
	// observe a stale outstanding set.
	GetOutstanding(ctx context.Context, courierID int64) ([]*assignment.Assignment, error)

	// GetCompleted retrieves the courier's completed assignments ordered
	// by complete_time, then assign_time, ascending.
	GetCompleted(ctx context.Context, courierID int64) ([]*assignment.Assignment, error)

	// GetCompletedInRun retrieves the courier's completed assignments
	// belonging to the run identified by the shared assign time, ordered
	// by complete_time ascending.
	GetCompletedInRun(ctx context.Context, courierID int64, assignTime time.Time) ([]*assignment.Assignment, error)

	// Assign inserts the given assignment rows as one batch; either all
	// rows are created or none.
	Assign(ctx context.Context, assignments []*assignment.Assignment) error

	// Unassign deletes the rows matching (courierID, orderID) for each of
	// the given orders. Used only on outstanding assignments.
	Unassign(ctx context.Context, courierID int64, orderIDs []int64) error

	// Update persists a completed assignment's complete_time and duration.
	Update(ctx context.Context, aggregate *assignment.Assignment) error
}
