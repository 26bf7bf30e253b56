package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrAssignOrdersCommandIsNotConstructed = errors.New(
		"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
	)
	ErrCourierIDIsInvalid = errors.New("courier id must be positive")
)

// AssignOrdersCommand represents a request to run order assignment for one courier.
type AssignOrdersCommand struct { //nolint:recvcheck //using for validation
	courierID int64

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a command to assign eligible orders to a courier.
func NewAssignOrdersCommand(courierID int64) (AssignOrdersCommand, error) {
	command := AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return AssignOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// CourierID returns the courier to assign orders to.
func (c AssignOrdersCommand) CourierID() int64 {
	return c.courierID
}

func (c *AssignOrdersCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return ErrCourierIDIsInvalid
	}

	c.courierID = courierID
	return nil
}
