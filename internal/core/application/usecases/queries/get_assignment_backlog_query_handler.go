package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAssignmentBacklogQueryHandler reads the dispatch backlog counters
// consumed by the periodic monitoring job.
type GetAssignmentBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentBacklogQueryHandler creates a handler for backlog counter queries.
func NewGetAssignmentBacklogQueryHandler(db *gorm.DB) GetAssignmentBacklogQueryHandler {
	return GetAssignmentBacklogQueryHandler{db: db}
}

// Handle executes the backlog counter query.
func (h GetAssignmentBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentBacklogQuery,
) (GetAssignmentBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAssignmentBacklogQueryResponse{}, err
	}

	var response GetAssignmentBacklogQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*)
			 FROM orders o
			 LEFT JOIN assignments a ON a.order_id = o.id
			 WHERE a.order_id IS NULL),
			(SELECT COUNT(*)
			 FROM assignments
			 WHERE complete_time IS NULL)
	`).Row()
	if err := row.Scan(&response.UnassignedOrders, &response.OutstandingAssignments); err != nil {
		return GetAssignmentBacklogQueryResponse{}, err
	}

	return response, nil
}
