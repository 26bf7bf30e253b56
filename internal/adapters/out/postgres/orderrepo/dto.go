// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Delivery windows are stored as a PostgreSQL text array in "HH:MM-HH:MM" form.
type OrderDTO struct {
	ID            int64          `gorm:"primaryKey"`
	Weight        float64        `gorm:"not null"`
	Region        int64          `gorm:"not null;index"`
	DeliveryHours pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID(),
		Weight:        aggregate.Weight(),
		Region:        aggregate.Region(),
		DeliveryHours: pq.StringArray(kernel.FormatTimeWindows(aggregate.DeliveryHours())),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	deliveryHours, err := kernel.ParseTimeWindows(dto.DeliveryHours)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(dto.ID, dto.Weight, dto.Region, deliveryHours)
}
