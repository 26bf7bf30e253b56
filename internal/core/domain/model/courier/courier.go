package courier

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity and the attributes
// the dispatch engine matches orders against.
//
// Key responsibilities:
//   - Managing courier identity (immutable integer ID)
//   - Holding the vehicle class, which fixes capacity and pay coefficient
//   - Holding the serviceable region set and working-hour windows
//   - Applying partial attribute updates from the profile-edit flow
//
// Business rules:
//   - ID must be positive and never changes
//   - Transport must belong to the closed foot/bike/car set
//   - Region identifiers must be positive
//   - Working-hour windows may overlap or repeat; no deduplication is done
type Courier struct {
	// id uniquely identifies the courier
	id int64
	// transport is the vehicle class; it determines capacity and pay coefficient
	transport Transport
	// regions are the region identifiers the courier serves
	regions []int64
	// workingHours are the courier's working-hour windows
	workingHours []kernel.TimeWindow
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified attributes.
// This is the only way to create a valid Courier instance; all parameters
// are validated and errors are aggregated.
//
// Parameters:
//   - id: Unique identifier (must be positive)
//   - transport: Vehicle class (must be foot, bike, or car)
//   - regions: Serviceable region identifiers (each must be positive)
//   - workingHours: Working-hour windows (each must be a constructed TimeWindow)
//
// Example:
//
//	hours, _ := kernel.ParseTimeWindows([]string{"09:00-18:00"})
//	c, err := NewCourier(1, Foot, []int64{1, 12, 22}, hours)
//	if err != nil {
//	    // handle validation error
//	}
func NewCourier(id int64, transport Transport, regions []int64, workingHours []kernel.TimeWindow) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setTransport(transport),
		c.setRegions(regions),
		c.setWorkingHours(workingHours),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two couriers for equality based on their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}

// Validate checks if the Courier was properly constructed using the NewCourier constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() int64 {
	return c.id
}

// Transport returns the courier's vehicle class.
func (c *Courier) Transport() Transport {
	return c.transport
}

// Regions returns the serviceable region identifiers.
// The returned slice is a copy to prevent external modification.
func (c *Courier) Regions() []int64 {
	out := make([]int64, len(c.regions))
	copy(out, c.regions)
	return out
}

// WorkingHours returns the courier's working-hour windows.
// The returned slice is a copy to prevent external modification.
func (c *Courier) WorkingHours() []kernel.TimeWindow {
	out := make([]kernel.TimeWindow, len(c.workingHours))
	copy(out, c.workingHours)
	return out
}

// ServesRegion reports whether the given region belongs to the courier's
// region set.
func (c *Courier) ServesRegion(region int64) bool {
	for _, r := range c.regions {
		if r == region {
			return true
		}
	}
	return false
}

// WorksDuring reports whether any of the given windows intersects any of
// the courier's working-hour windows. A single intersecting pair suffices.
func (c *Courier) WorksDuring(windows []kernel.TimeWindow) bool {
	for _, work := range c.workingHours {
		for _, w := range windows {
			if work.Intersects(w) {
				return true
			}
		}
	}
	return false
}

// Patch describes a partial attribute update. Nil fields keep the current
// value, mirroring the profile-edit request where absent fields are untouched.
type Patch struct {
	Transport    *Transport
	Regions      []int64
	WorkingHours []kernel.TimeWindow
}

// ApplyPatch updates the courier's mutable attributes from a Patch.
// Outstanding assignments that stop qualifying after the update are shed by
// the application layer, not here; the aggregate only changes its own state.
func (c *Courier) ApplyPatch(patch Patch) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if patch.Transport != nil {
		if err := c.setTransport(*patch.Transport); err != nil {
			return err
		}
	}
	if patch.Regions != nil {
		if err := c.setRegions(patch.Regions); err != nil {
			return err
		}
	}
	if patch.WorkingHours != nil {
		if err := c.setWorkingHours(patch.WorkingHours); err != nil {
			return err
		}
	}
	return nil
}

// setID sets the courier's unique identifier with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}

	c.id = id
	return nil
}

// setTransport sets the courier's vehicle class with validation.
func (c *Courier) setTransport(transport Transport) error {
	if err := transport.Validate(); err != nil {
		return err
	}

	c.transport = transport
	return nil
}

// setRegions sets the serviceable region set with validation.
func (c *Courier) setRegions(regions []int64) error {
	for _, region := range regions {
		if region <= 0 {
			return errs.NewValueIsInvalidError("region")
		}
	}

	c.regions = make([]int64, len(regions))
	copy(c.regions, regions)
	return nil
}

// setWorkingHours sets the working-hour windows with validation.
func (c *Courier) setWorkingHours(windows []kernel.TimeWindow) error {
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	c.workingHours = make([]kernel.TimeWindow, len(windows))
	copy(c.workingHours, windows)
	return nil
}
