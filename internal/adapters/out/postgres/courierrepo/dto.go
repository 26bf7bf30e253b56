// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Region and working-hour collections use native PostgreSQL arrays.
type CourierDTO struct {
	ID           int64          `gorm:"primaryKey"`
	Transport    string         `gorm:"type:varchar(16);not null"`
	Regions      pq.Int64Array  `gorm:"type:bigint[];not null"`
	WorkingHours pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           aggregate.ID(),
		Transport:    aggregate.Transport().String(),
		Regions:      pq.Int64Array(aggregate.Regions()),
		WorkingHours: pq.StringArray(kernel.FormatTimeWindows(aggregate.WorkingHours())),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	transport, err := courier.ParseTransport(dto.Transport)
	if err != nil {
		return nil, err
	}

	workingHours, err := kernel.ParseTimeWindows(dto.WorkingHours)
	if err != nil {
		return nil, err
	}

	return courier.NewCourier(dto.ID, transport, dto.Regions, workingHours)
}
