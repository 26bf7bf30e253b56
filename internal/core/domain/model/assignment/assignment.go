package assignment

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for assignment operations.
var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
	// ErrAlreadyCompleted is returned when completing an assignment whose
	// completion time is already set.
	ErrAlreadyCompleted = errors.New("assignment has already been completed")
	// ErrInvalidCompleteTime is returned when the supplied completion time
	// precedes the duration reference point.
	ErrInvalidCompleteTime = errors.New("invalid complete time")
)

// Assignment is the relation between exactly one courier and one order.
// It is the only place where delivery progress is recorded.
//
// Lifecycle per (courier, order) pair:
//
//	UNBOUND ──> OUTSTANDING ──> COMPLETED
//	               │
//	               └──> UNBOUND (unassigned after a profile update)
//
// Invariants:
//   - assignTime is set once at creation and never changes
//   - completeTime and duration are set together, exactly once, by Complete
//   - coefficient is copied from the courier's vehicle class at creation and
//     frozen; later courier changes never alter it
type Assignment struct {
	// courierID and orderID form the identity of the relation
	courierID int64
	orderID   int64

	// assignTime is shared by every row created in one assign batch
	assignTime time.Time

	// completeTime is nil while the assignment is outstanding
	completeTime *time.Time

	// duration is the delivery duration in seconds, set only at completion
	duration *float64

	// coefficient is the pay coefficient frozen at assign time
	coefficient int

	// guard ensures the assignment was properly constructed
	guard guard.ConstructorGuard
}

// NewAssignment creates a fresh outstanding assignment binding the order to
// the courier at the given assign time, with the pay coefficient frozen from
// the courier's current vehicle class.
func NewAssignment(courierID, orderID int64, assignTime time.Time, coefficient int) (*Assignment, error) {
	a := &Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setCourierID(courierID),
		a.setOrderID(orderID),
		a.setAssignTime(assignTime),
		a.setCoefficient(coefficient),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage,
// including an already-recorded completion when present. completeTime and
// duration must either both be nil or both be set.
func RestoreAssignment(
	courierID, orderID int64,
	assignTime time.Time,
	completeTime *time.Time,
	duration *float64,
	coefficient int,
) (*Assignment, error) {
	a, err := NewAssignment(courierID, orderID, assignTime, coefficient)
	if err != nil {
		return nil, err
	}

	if (completeTime == nil) != (duration == nil) {
		return nil, errs.NewValueIsInvalidError("completeTime")
	}
	if completeTime != nil {
		ct := *completeTime
		d := *duration
		a.completeTime = &ct
		a.duration = &d
	}

	return a, nil
}

// Validate checks if the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// CourierID returns the courier side of the relation.
func (a *Assignment) CourierID() int64 {
	return a.courierID
}

// OrderID returns the order side of the relation.
func (a *Assignment) OrderID() int64 {
	return a.orderID
}

// AssignTime returns the time the assignment batch was created.
func (a *Assignment) AssignTime() time.Time {
	return a.assignTime
}

// CompleteTime returns the completion time, or nil while outstanding.
func (a *Assignment) CompleteTime() *time.Time {
	if a.completeTime == nil {
		return nil
	}
	ct := *a.completeTime
	return &ct
}

// Duration returns the delivery duration in seconds, or nil while outstanding.
func (a *Assignment) Duration() *float64 {
	if a.duration == nil {
		return nil
	}
	d := *a.duration
	return &d
}

// Coefficient returns the pay coefficient frozen at assign time.
func (a *Assignment) Coefficient() int {
	return a.coefficient
}

// IsCompleted reports whether the assignment has left the outstanding state.
func (a *Assignment) IsCompleted() bool {
	return a.completeTime != nil
}

// Complete transitions the assignment from OUTSTANDING to COMPLETED.
//
// The duration is the time elapsed from the reference point to completeTime.
// The reference is the later of the courier's most recent completion within
// the current run and this assignment's own assign time; the caller resolves
// it. A completion earlier than the reference is rejected with
// ErrInvalidCompleteTime and the assignment is left unmodified.
func (a *Assignment) Complete(completeTime, reference time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.IsCompleted() {
		return ErrAlreadyCompleted
	}

	duration := completeTime.Sub(reference).Seconds()
	if duration < 0 {
		return ErrInvalidCompleteTime
	}

	ct := completeTime
	a.completeTime = &ct
	a.duration = &duration
	return nil
}

// setCourierID sets the courier identifier with validation.
func (a *Assignment) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValueIsRequiredError("courierID")
	}

	a.courierID = courierID
	return nil
}

// setOrderID sets the order identifier with validation.
func (a *Assignment) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}

	a.orderID = orderID
	return nil
}

// setAssignTime sets the assignment time with validation.
func (a *Assignment) setAssignTime(assignTime time.Time) error {
	if assignTime.IsZero() {
		return errs.NewValueIsRequiredError("assignTime")
	}

	a.assignTime = assignTime
	return nil
}

// setCoefficient sets the frozen pay coefficient with validation.
func (a *Assignment) setCoefficient(coefficient int) error {
	if coefficient <= 0 {
		return errs.NewValueIsRequiredError("coefficient")
	}

	a.coefficient = coefficient
	return nil
}
