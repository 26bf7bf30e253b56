package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Weight bounds for a single order, in kilograms.
const (
	MinWeight = 0.01
	MaxWeight = 50.0
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a delivery order in the system.
//
// Order follows these invariants:
//   - Must have a positive integer identifier, immutable once created
//   - Weight must lie within [MinWeight, MaxWeight]
//   - Region must be a positive identifier
//   - Delivery-hour windows must be constructed TimeWindow values
//
// An order carries no assignment state of its own; the relation to a courier
// lives in the assignment model.
type Order struct {
	// id is the unique identifier for the order
	id int64

	// weight is the order weight in kilograms
	weight float64

	// region is the delivery region identifier
	region int64

	// deliveryHours are the windows in which the order may be delivered
	deliveryHours []kernel.TimeWindow

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// Example:
//
//	hours, _ := kernel.ParseTimeWindows([]string{"09:00-18:00"})
//	o, err := NewOrder(1, 3.14, 12, hours)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id int64, weight float64, region int64, deliveryHours []kernel.TimeWindow) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setWeight(weight),
		o.setRegion(region),
		o.setDeliveryHours(deliveryHours),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// IsEqual compares two orders for equality based on their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	if other == nil {
		return false
	}
	return o.id == other.id
}

// Validate checks if the Order was properly constructed using the NewOrder constructor.
// The zero value of Order is invalid and will fail this validation.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the unique identifier of the order.
func (o *Order) ID() int64 {
	return o.id
}

// Weight returns the order weight in kilograms.
func (o *Order) Weight() float64 {
	return o.weight
}

// Region returns the delivery region identifier.
func (o *Order) Region() int64 {
	return o.region
}

// DeliveryHours returns the delivery-hour windows.
// The returned slice is a copy to prevent external modification.
func (o *Order) DeliveryHours() []kernel.TimeWindow {
	out := make([]kernel.TimeWindow, len(o.deliveryHours))
	copy(out, o.deliveryHours)
	return out
}

// setID sets the order's unique identifier with validation.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}

	o.id = id
	return nil
}

// setWeight sets the order weight with range validation.
func (o *Order) setWeight(weight float64) error {
	if weight < MinWeight || weight > MaxWeight {
		return errs.NewValueIsOutOfRangeError("weight", weight, MinWeight, MaxWeight)
	}

	o.weight = weight
	return nil
}

// setRegion sets the delivery region with validation.
func (o *Order) setRegion(region int64) error {
	if region <= 0 {
		return errs.NewValueIsInvalidError("region")
	}

	o.region = region
	return nil
}

// setDeliveryHours sets the delivery-hour windows with validation.
func (o *Order) setDeliveryHours(windows []kernel.TimeWindow) error {
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	o.deliveryHours = make([]kernel.TimeWindow, len(windows))
	copy(o.deliveryHours, windows)
	return nil
}
