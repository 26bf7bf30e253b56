package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByIDs retrieves order aggregates for the given identifiers,
	// ordered by id ascending. Missing ids are silently skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]*order.Order, error)

	// GetAllUnassigned retrieves orders with no assignment row at all,
	// irrespective of courier. Orders whose only assignments have been
	// completed are not part of this set.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)
}
