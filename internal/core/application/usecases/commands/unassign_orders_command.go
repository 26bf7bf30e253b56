package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrUnassignOrdersCommandIsNotConstructed = errors.New(
	"UnassignOrdersCommand must be created via NewUnassignOrdersCommand constructor",
)

// UnassignOrdersCommand represents a request to release the courier's
// outstanding orders that no longer pass the eligibility filter.
type UnassignOrdersCommand struct { //nolint:recvcheck //using for validation
	courierID int64

	guard guard.ConstructorGuard
}

// NewUnassignOrdersCommand creates a command to shed ineligible outstanding orders.
func NewUnassignOrdersCommand(courierID int64) (UnassignOrdersCommand, error) {
	command := UnassignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return UnassignOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrUnassignOrdersCommandIsNotConstructed)
}

// CourierID returns the courier whose outstanding orders are re-evaluated.
func (c UnassignOrdersCommand) CourierID() int64 {
	return c.courierID
}

func (c *UnassignOrdersCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return ErrCourierIDIsInvalid
	}

	c.courierID = courierID
	return nil
}
