package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCourierQueryHandler reads a courier profile and folds the completed
// delivery history into rating and earnings figures.
//
// The rating input is the smallest per-region average delivery duration: the
// courier is judged by the region they serve best. Earnings sum the pay
// coefficients frozen on each assignment at assign time, so later transport
// changes never reprice past work.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for courier profile queries.
// Requires a GORM database connection for query execution.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle executes the courier profile query.
// Returns errs.ObjectNotFoundError when the courier does not exist.
func (h GetCourierQueryHandler) Handle(
	ctx context.Context,
	query GetCourierQuery,
) (GetCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierQueryResponse{}, err
	}

	response := GetCourierQueryResponse{ID: query.CourierID()}

	var regions pq.Int64Array
	var workingHours pq.StringArray
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			transport,
			regions,
			working_hours
		FROM couriers
		WHERE id = ?
	`, query.CourierID()).Row()
	if err := row.Scan(&response.Transport, &regions, &workingHours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCourierQueryResponse{}, errs.NewObjectNotFoundError("courier", query.CourierID())
		}
		return GetCourierQueryResponse{}, err
	}
	response.Regions = regions
	response.WorkingHours = workingHours

	minAvgDuration, hasCompleted, err := h.minRegionalAverageDuration(ctx, query.CourierID())
	if err != nil {
		return GetCourierQueryResponse{}, err
	}
	if hasCompleted {
		response.Rating = services.Rating(minAvgDuration)
	}

	coefficients, err := h.completedCoefficients(ctx, query.CourierID())
	if err != nil {
		return GetCourierQueryResponse{}, err
	}
	response.Earnings = services.Earnings(coefficients)

	return response, nil
}

// minRegionalAverageDuration returns the smallest average delivery duration
// across the regions the courier has delivered in. The second result is false
// when the courier has no completed deliveries.
func (h GetCourierQueryHandler) minRegionalAverageDuration(
	ctx context.Context,
	courierID int64,
) (float64, bool, error) {
	var minAvg float64
	row := h.db.WithContext(ctx).Raw(`
		SELECT AVG(a.duration)
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		WHERE a.courier_id = ? AND a.complete_time IS NOT NULL
		GROUP BY o.region
		ORDER BY 1 ASC
		LIMIT 1
	`, courierID).Row()
	if err := row.Scan(&minAvg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return minAvg, true, nil
}

// completedCoefficients returns the pay coefficients of the courier's
// completed deliveries.
func (h GetCourierQueryHandler) completedCoefficients(ctx context.Context, courierID int64) ([]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT coefficient
		FROM assignments
		WHERE courier_id = ? AND complete_time IS NOT NULL
	`, courierID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coefficients := make([]int, 0)
	for rows.Next() {
		var coefficient int
		if err = rows.Scan(&coefficient); err != nil {
			return nil, err
		}
		coefficients = append(coefficients, coefficient)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return coefficients, nil
}
