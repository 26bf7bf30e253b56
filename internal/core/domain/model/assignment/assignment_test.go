package assignment_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assignTime = time.Date(2021, 3, 27, 10, 0, 0, 0, time.UTC)

func TestNewAssignment(t *testing.T) {
	t.Run("valid assignment", func(t *testing.T) {
		a, err := assignment.NewAssignment(1, 2, assignTime, 2)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, int64(1), a.CourierID())
		assert.Equal(t, int64(2), a.OrderID())
		assert.Equal(t, assignTime, a.AssignTime())
		assert.Equal(t, 2, a.Coefficient())
		assert.False(t, a.IsCompleted())
		assert.Nil(t, a.CompleteTime())
		assert.Nil(t, a.Duration())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		_, err := assignment.NewAssignment(0, 2, assignTime, 2)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = assignment.NewAssignment(1, 0, assignTime, 2)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = assignment.NewAssignment(1, 2, time.Time{}, 2)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = assignment.NewAssignment(1, 2, assignTime, 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a assignment.Assignment
		require.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
	})
}

func TestRestoreAssignment(t *testing.T) {
	t.Run("outstanding row", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(1, 2, assignTime, nil, nil, 5)

		require.NoError(t, err)
		assert.False(t, a.IsCompleted())
	})

	t.Run("completed row", func(t *testing.T) {
		completeTime := assignTime.Add(20 * time.Minute)
		duration := 1200.0

		a, err := assignment.RestoreAssignment(1, 2, assignTime, &completeTime, &duration, 5)

		require.NoError(t, err)
		require.True(t, a.IsCompleted())
		assert.Equal(t, completeTime, *a.CompleteTime())
		assert.InDelta(t, 1200.0, *a.Duration(), 1e-9)
	})

	t.Run("completion fields must come together", func(t *testing.T) {
		completeTime := assignTime.Add(time.Minute)

		_, err := assignment.RestoreAssignment(1, 2, assignTime, &completeTime, nil, 5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		duration := 60.0
		_, err = assignment.RestoreAssignment(1, 2, assignTime, nil, &duration, 5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAssignment_Complete(t *testing.T) {
	t.Run("duration from assign time", func(t *testing.T) {
		a, err := assignment.NewAssignment(1, 2, assignTime, 2)
		require.NoError(t, err)
		completeTime := assignTime.Add(25 * time.Minute)

		require.NoError(t, a.Complete(completeTime, a.AssignTime()))

		require.True(t, a.IsCompleted())
		assert.Equal(t, completeTime, *a.CompleteTime())
		assert.InDelta(t, 1500.0, *a.Duration(), 1e-9)
	})

	t.Run("duration from prior completion in run", func(t *testing.T) {
		a, err := assignment.NewAssignment(1, 2, assignTime, 2)
		require.NoError(t, err)
		reference := assignTime.Add(10 * time.Minute) // previous order in the run
		completeTime := assignTime.Add(15 * time.Minute)

		require.NoError(t, a.Complete(completeTime, reference))

		assert.InDelta(t, 300.0, *a.Duration(), 1e-9)
	})

	t.Run("zero duration is accepted", func(t *testing.T) {
		a, err := assignment.NewAssignment(1, 2, assignTime, 2)
		require.NoError(t, err)

		require.NoError(t, a.Complete(assignTime, assignTime))

		assert.InDelta(t, 0.0, *a.Duration(), 1e-9)
	})

	t.Run("completion before reference is rejected without mutation", func(t *testing.T) {
		a, err := assignment.NewAssignment(1, 2, assignTime, 2)
		require.NoError(t, err)

		err = a.Complete(assignTime.Add(-time.Second), a.AssignTime())

		require.ErrorIs(t, err, assignment.ErrInvalidCompleteTime)
		assert.False(t, a.IsCompleted())
		assert.Nil(t, a.CompleteTime())
		assert.Nil(t, a.Duration())
	})

	t.Run("second completion is rejected", func(t *testing.T) {
		a, err := assignment.NewAssignment(1, 2, assignTime, 2)
		require.NoError(t, err)
		firstComplete := assignTime.Add(time.Minute)
		require.NoError(t, a.Complete(firstComplete, a.AssignTime()))

		err = a.Complete(assignTime.Add(2*time.Minute), a.AssignTime())

		require.ErrorIs(t, err, assignment.ErrAlreadyCompleted)
		assert.Equal(t, firstComplete, *a.CompleteTime())
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var a assignment.Assignment
		err := a.Complete(assignTime, assignTime)

		require.ErrorIs(t, err, assignment.ErrAssignmentIsNotConstructed)
	})
}
