package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
	ErrOrderIDIsInvalid      = errors.New("order id must be positive")
	ErrCompleteTimeIsMissing = errors.New("complete time is required")
)

// CompleteOrderCommand represents a request to mark an assigned order delivered.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	courierID    int64
	orderID      int64
	completeTime time.Time

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order delivery.
func NewCompleteOrderCommand(courierID, orderID int64, completeTime time.Time) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setOrderID(orderID),
		command.setCompleteTime(completeTime),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// CourierID returns the courier reporting the delivery.
func (c CompleteOrderCommand) CourierID() int64 {
	return c.courierID
}

// OrderID returns the delivered order.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

// CompleteTime returns the reported delivery time.
func (c CompleteOrderCommand) CompleteTime() time.Time {
	return c.completeTime
}

func (c *CompleteOrderCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return ErrCourierIDIsInvalid
	}

	c.courierID = courierID
	return nil
}

func (c *CompleteOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setCompleteTime(completeTime time.Time) error {
	if completeTime.IsZero() {
		return ErrCompleteTimeIsMissing
	}

	c.completeTime = completeTime.UTC()
	return nil
}
