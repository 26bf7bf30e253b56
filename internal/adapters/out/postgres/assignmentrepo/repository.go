package assignmentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the assignment row for the (courier, order) pair.
func (r *GormAssignmentRepository) Get(ctx context.Context, courierID, orderID int64) (*assignment.Assignment, error) {
	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "courier_id = ? AND order_id = ?", courierID, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", fmt.Sprintf("%d/%d", courierID, orderID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOutstanding retrieves the courier's not-yet-completed assignments,
// oldest assign time first. Rows are locked so a concurrent assignment or
// completion cannot change the outstanding set under this transaction.
func (r *GormAssignmentRepository) GetOutstanding(ctx context.Context, courierID int64) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("courier_id = ? AND complete_time IS NULL", courierID).
		Order("assign_time, order_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetCompleted retrieves the courier's completed assignments in completion order.
func (r *GormAssignmentRepository) GetCompleted(ctx context.Context, courierID int64) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("courier_id = ? AND complete_time IS NOT NULL", courierID).
		Order("complete_time, assign_time").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetCompletedInRun retrieves the courier's completed assignments that share
// the given assign time, in completion order. Assignments created by one
// batch all carry the same assign time, which identifies the run.
func (r *GormAssignmentRepository) GetCompletedInRun(
	ctx context.Context,
	courierID int64,
	assignTime time.Time,
) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("courier_id = ? AND assign_time = ? AND complete_time IS NOT NULL", courierID, assignTime).
		Order("complete_time").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Assign inserts the given assignments as a single batch.
func (r *GormAssignmentRepository) Assign(ctx context.Context, assignments []*assignment.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	dtos := make([]AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		if err := a.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(a))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, a := range assignments {
		r.tracker.TrackAggregate(a.OrderID(), a)
	}
	return nil
}

// Unassign deletes the courier's assignment rows for the given orders.
// Only outstanding rows may be removed; completed history stays intact.
func (r *GormAssignmentRepository) Unassign(ctx context.Context, courierID int64, orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("courier_id = ? AND order_id IN ? AND complete_time IS NULL", courierID, orderIDs).
		Delete(&AssignmentDTO{}).Error
}

// Update persists the completion fields of an existing assignment.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("courier_id = ? AND order_id = ?", aggregate.CourierID(), aggregate.OrderID()).
		Updates(map[string]any{
			"complete_time": aggregate.CompleteTime(),
			"duration":      aggregate.Duration(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}
