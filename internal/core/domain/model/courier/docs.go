// Package courier implements the Courier aggregate for the dispatch domain.
//
// A courier carries an immutable integer identity, a vehicle class from the
// closed foot/bike/car set, a serviceable region set, and a collection of
// working-hour windows. The vehicle class fixes both the carrying capacity
// used by the eligibility pipeline and the pay coefficient frozen into
// assignments at assign time.
//
// The aggregate enforces its invariants through the constructor and setters;
// zero-value instances are rejected by the constructor guard.
package courier
