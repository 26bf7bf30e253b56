// Package order implements the Order aggregate for the dispatch domain.
//
// An order carries an immutable integer identity, a weight bounded to
// [0.01, 50] kilograms, a single positive delivery region, and a collection
// of delivery-hour windows. Assignment state is not part of the order; the
// relation between a courier and an order lives in the assignment model.
package order
