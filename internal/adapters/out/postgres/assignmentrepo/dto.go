// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. An assignment row links one courier to one order
// and carries the lifecycle timestamps of that link.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignments.
// The (courier_id, order_id) pair is unique: an order is assigned to at most
// one courier at a time, and completed assignments are never re-created.
type AssignmentDTO struct {
	ID           uuid.UUID  `gorm:"primaryKey"`
	CourierID    int64      `gorm:"not null;uniqueIndex:idx_assignments_pair;index"`
	OrderID      int64      `gorm:"not null;uniqueIndex:idx_assignments_pair"`
	AssignTime   time.Time  `gorm:"not null;index"`
	CompleteTime *time.Time `gorm:""`
	Duration     *float64   `gorm:""`
	Coefficient  int        `gorm:"not null"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
// A fresh surrogate key is generated; lookups go through the (courier, order) pair.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           uuid.New(),
		CourierID:    aggregate.CourierID(),
		OrderID:      aggregate.OrderID(),
		AssignTime:   aggregate.AssignTime(),
		CompleteTime: aggregate.CompleteTime(),
		Duration:     aggregate.Duration(),
		Coefficient:  aggregate.Coefficient(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	return assignment.RestoreAssignment(
		dto.CourierID,
		dto.OrderID,
		dto.AssignTime.UTC(),
		utcPtr(dto.CompleteTime),
		dto.Duration,
		dto.Coefficient,
	)
}

// toDomainSlice converts a slice of database DTOs to assignment domain aggregates.
func toDomainSlice(dtos []AssignmentDTO) ([]*assignment.Assignment, error) {
	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
