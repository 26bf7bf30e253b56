package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves the unbound order backlog.
// An order leaves this set the moment any assignment row references it and
// returns only if that assignment is released before completion.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unassigned orders.
// Results are sorted by order ID for consistent output.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnassignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.weight,
			o.region,
			o.delivery_hours
		FROM orders o
		LEFT JOIN assignments a ON a.order_id = o.id
		WHERE a.order_id IS NULL
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnassignedOrdersQueryResponse
		var deliveryHours pq.StringArray

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.Weight,
			&orderResp.Region,
			&deliveryHours,
		)
		if err != nil {
			return nil, err
		}

		orderResp.DeliveryHours = deliveryHours
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
