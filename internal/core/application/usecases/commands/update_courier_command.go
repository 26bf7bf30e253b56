package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateCourierCommandIsNotConstructed = errors.New(
		"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one field must be updated")
)

// UpdateCourierCommand represents a partial update of a courier profile.
// Nil fields keep their current values; present fields replace them whole.
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID    int64
	transport    *string
	regions      []int64
	workingHours []string

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a command to patch a courier profile.
// At least one of transport, regions, or working hours must be present.
func NewUpdateCourierCommand(
	courierID int64,
	transport *string,
	regions []int64,
	workingHours []string,
) (UpdateCourierCommand, error) {
	command := UpdateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setFields(transport, regions, workingHours),
	); err != nil {
		return UpdateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the courier to patch.
func (c UpdateCourierCommand) CourierID() int64 {
	return c.courierID
}

// Transport returns the new transport kind, or nil to keep the current one.
func (c UpdateCourierCommand) Transport() *string {
	return c.transport
}

// Regions returns the new region list, or nil to keep the current one.
func (c UpdateCourierCommand) Regions() []int64 {
	return c.regions
}

// WorkingHours returns the new working windows, or nil to keep the current ones.
func (c UpdateCourierCommand) WorkingHours() []string {
	return c.workingHours
}

func (c *UpdateCourierCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return ErrCourierIDIsInvalid
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateCourierCommand) setFields(transport *string, regions []int64, workingHours []string) error {
	if transport == nil && regions == nil && workingHours == nil {
		return ErrNothingToUpdate
	}

	c.transport = transport
	c.regions = regions
	c.workingHours = workingHours
	return nil
}
