package services

import (
	"sort"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// EligibilityFilter is a domain service that narrows a candidate order list
// to the subset a courier may take. It is pure: no repository access, no
// side effects, input slices are never mutated.
//
// The pipeline runs three predicates in a fixed sequence, each stage only
// narrowing the previous one:
//  1. region: the order's region belongs to the courier's region set
//  2. time: any delivery window intersects any working window
//  3. weight: maximum-cardinality subset under the vehicle capacity
//
// The weight stage sorts candidates by weight ascending and greedily
// accumulates until the capacity would be exceeded. This maximizes the
// number of orders taken rather than the total weight carried.
type EligibilityFilter struct{}

// NewEligibilityFilter creates a new EligibilityFilter instance.
func NewEligibilityFilter() EligibilityFilter {
	return EligibilityFilter{}
}

// Eligible runs the full region → time → weight pipeline for the courier
// and returns the admissible subset of the candidates.
func (f EligibilityFilter) Eligible(c *courier.Courier, candidates []*order.Order) ([]*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	orders, err := f.ByRegion(c, candidates)
	if err != nil {
		return nil, err
	}
	orders, err = f.ByTime(c, orders)
	if err != nil {
		return nil, err
	}
	return f.ByWeight(c, orders)
}

// ByRegion keeps orders whose region is in the courier's region set.
// Input order is preserved.
func (f EligibilityFilter) ByRegion(c *courier.Courier, candidates []*order.Order) ([]*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := make([]*order.Order, 0, len(candidates))
	for _, o := range candidates {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if c.ServesRegion(o.Region()) {
			result = append(result, o)
		}
	}
	return result, nil
}

// ByTime keeps orders with at least one delivery window intersecting at
// least one of the courier's working windows. One intersecting pair is
// enough; duplicates in the input are dropped.
func (f EligibilityFilter) ByTime(c *courier.Courier, candidates []*order.Order) ([]*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := make([]*order.Order, 0, len(candidates))
	seen := make(map[int64]bool, len(candidates))
	for _, o := range candidates {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if seen[o.ID()] {
			continue
		}
		if c.WorksDuring(o.DeliveryHours()) {
			seen[o.ID()] = true
			result = append(result, o)
		}
	}
	return result, nil
}

// ByWeight selects a maximum-cardinality subset whose total weight stays
// within the courier's vehicle capacity.
//
// Candidates are sorted by weight ascending (stable, so equal weights keep
// their input order) and accumulated greedily; selection stops at the first
// order that would push the running total over capacity. The outcome is
// therefore independent of the input order except between equal weights.
func (f EligibilityFilter) ByWeight(c *courier.Courier, candidates []*order.Order) ([]*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]*order.Order, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight() < sorted[j].Weight()
	})

	capacity := c.Transport().Capacity()
	result := make([]*order.Order, 0, len(sorted))
	currentWeight := 0.0
	for _, o := range sorted {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		currentWeight += o.Weight()
		if currentWeight > capacity {
			break
		}
		result = append(result, o)
	}
	return result, nil
}
