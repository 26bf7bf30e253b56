package courier

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Transport represents the courier's vehicle class. It is a closed set:
// each class maps to a fixed carrying capacity and a fixed pay coefficient.
//
// The pay coefficient is copied into an assignment at assign time and frozen
// there, so a later transport change never alters past earnings.
type Transport int

const (
	// Unknown represents an invalid or undefined transport.
	// This value (0) helps catch uninitialized Transport values.
	Unknown Transport = iota

	// Foot is a courier delivering on foot.
	Foot

	// Bike is a courier delivering by bicycle.
	Bike

	// Car is a courier delivering by car.
	Car
)

// getTransportStrings returns a map of Transport values to their string representations.
func getTransportStrings() map[Transport]string {
	return map[Transport]string{
		Unknown: "unknown",
		Foot:    "foot",
		Bike:    "bike",
		Car:     "car",
	}
}

// getValidTransportStrings returns a map of only valid Transport values.
func getValidTransportStrings() map[Transport]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Transport]string{
		Foot: "foot",
		Bike: "bike",
		Car:  "car",
	}
}

// getTransportCapacities returns the carrying capacity in kilograms per class.
func getTransportCapacities() map[Transport]float64 {
	return map[Transport]float64{
		Foot: 10,
		Bike: 15,
		Car:  50,
	}
}

// getTransportCoefficients returns the pay coefficient per class.
func getTransportCoefficients() map[Transport]int {
	return map[Transport]int{
		Foot: 2,
		Bike: 5,
		Car:  9,
	}
}

// Validate checks if the Transport value is valid.
//
// Valid transports are: Foot, Bike, Car. Unknown (0) and any other values
// are invalid.
func (t Transport) Validate() error {
	if _, ok := getValidTransportStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport",
			fmt.Errorf("%d is not a valid transport", t))
	}
	return nil
}

// Capacity returns the maximum total order weight, in kilograms, a courier
// of this class may carry at once.
func (t Transport) Capacity() float64 {
	return getTransportCapacities()[t]
}

// Coefficient returns the pay coefficient of this class, used when
// computing earnings for completed assignments.
func (t Transport) Coefficient() int {
	return getTransportCoefficients()[t]
}

// String returns the string representation of the transport.
func (t Transport) String() string {
	if s, ok := getTransportStrings()[t]; ok {
		return s
	}
	return getTransportStrings()[Unknown]
}

// ParseTransport converts a string into a Transport value.
// Returns an error for anything outside the closed foot/bike/car set.
func ParseTransport(s string) (Transport, error) {
	for transport, name := range getValidTransportStrings() {
		if name == s {
			return transport, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("transport",
		fmt.Errorf("%q is not a valid transport", s))
}
