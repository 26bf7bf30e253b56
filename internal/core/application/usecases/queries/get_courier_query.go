// Package queries contains read operations over the dispatch state.
// Query handlers bypass the domain aggregates and read projections with raw
// SQL, keeping the read side free of write-model loading costs.
package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery retrieves one courier profile together with the rating and
// earnings derived from the courier's completed deliveries.
type GetCourierQuery struct {
	courierID int64

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query for a courier profile with statistics.
func NewGetCourierQuery(courierID int64) (GetCourierQuery, error) {
	if courierID <= 0 {
		return GetCourierQuery{}, errors.New("courier id must be positive")
	}

	return GetCourierQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the courier to look up.
func (q GetCourierQuery) CourierID() int64 {
	return q.courierID
}

// GetCourierQueryResponse represents a courier profile with statistics.
// Rating is 0 for a courier with no completed deliveries.
type GetCourierQueryResponse struct {
	ID           int64
	Transport    string
	Regions      []int64
	WorkingHours []string
	Rating       float64
	Earnings     int
}
