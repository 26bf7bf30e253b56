// Package services contains domain services for the dispatch system.
//
// Domain services hold business logic that does not naturally belong to a
// single aggregate:
//   - EligibilityFilter: the region → time → weight pipeline deciding which
//     unbound orders a courier may take
//   - Rating and Earnings: the arithmetic deriving courier statistics from
//     completed assignment history
//
// Everything here is pure computation over domain objects; persistence and
// transaction concerns stay in the application layer.
package services
