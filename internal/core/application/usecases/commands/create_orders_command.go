package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrdersCommandIsNotConstructed = errors.New(
		"CreateOrdersCommand must be created via NewCreateOrdersCommand constructor",
	)
	ErrOrdersAreRequired = errors.New("at least one order is required")
)

// OrderData carries the raw fields of one order to register.
type OrderData struct {
	ID            int64
	Weight        float64
	Region        int64
	DeliveryHours []string
}

// CreateOrdersCommand represents a request to register a batch of orders.
type CreateOrdersCommand struct { //nolint:recvcheck //using for validation
	orders []OrderData

	guard guard.ConstructorGuard
}

// NewCreateOrdersCommand creates a command to register orders.
// Requires a non-empty batch; per-order validation happens in the handler
// via the domain constructors.
func NewCreateOrdersCommand(orders []OrderData) (CreateOrdersCommand, error) {
	command := CreateOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrders(orders); err != nil {
		return CreateOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrdersCommandIsNotConstructed)
}

// Orders returns the batch of orders to register.
func (c CreateOrdersCommand) Orders() []OrderData {
	return c.orders
}

func (c *CreateOrdersCommand) setOrders(orders []OrderData) error {
	if len(orders) == 0 {
		return ErrOrdersAreRequired
	}

	c.orders = orders
	return nil
}
