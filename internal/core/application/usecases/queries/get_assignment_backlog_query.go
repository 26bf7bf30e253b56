package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentBacklogQueryIsNotConstructed = errors.New(
	"GetAssignmentBacklogQuery must be created via NewGetAssignmentBacklogQuery constructor",
)

// GetAssignmentBacklogQuery retrieves work-in-progress counters for monitoring.
type GetAssignmentBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignmentBacklogQuery creates a query for backlog counters.
func NewGetAssignmentBacklogQuery() GetAssignmentBacklogQuery {
	return GetAssignmentBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentBacklogQueryIsNotConstructed)
}

// GetAssignmentBacklogQueryResponse represents the current dispatch backlog.
type GetAssignmentBacklogQueryResponse struct {
	UnassignedOrders       int64
	OutstandingAssignments int64
}
