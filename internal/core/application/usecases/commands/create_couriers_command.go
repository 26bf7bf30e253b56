package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateCouriersCommandIsNotConstructed = errors.New(
		"CreateCouriersCommand must be created via NewCreateCouriersCommand constructor",
	)
	ErrCouriersAreRequired = errors.New("at least one courier is required")
)

// CourierData carries the raw fields of one courier to register.
// Transport and working hours stay in their boundary form; the handler
// converts them through the domain constructors, which validate.
type CourierData struct {
	ID           int64
	Transport    string
	Regions      []int64
	WorkingHours []string
}

// CreateCouriersCommand represents a request to register a batch of couriers.
type CreateCouriersCommand struct { //nolint:recvcheck //using for validation
	couriers []CourierData

	guard guard.ConstructorGuard
}

// NewCreateCouriersCommand creates a command to register couriers.
// Requires a non-empty batch; per-courier validation happens in the handler
// via the domain constructors.
func NewCreateCouriersCommand(couriers []CourierData) (CreateCouriersCommand, error) {
	command := CreateCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCouriers(couriers); err != nil {
		return CreateCouriersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCouriersCommand) Validate() error {
	return c.guard.Validate(ErrCreateCouriersCommandIsNotConstructed)
}

// Couriers returns the batch of couriers to register.
func (c CreateCouriersCommand) Couriers() []CourierData {
	return c.couriers
}

func (c *CreateCouriersCommand) setCouriers(couriers []CourierData) error {
	if len(couriers) == 0 {
		return ErrCouriersAreRequired
	}

	c.couriers = couriers
	return nil
}
