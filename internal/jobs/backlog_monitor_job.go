package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogMonitorJob periodically reports the dispatch backlog.
// The job only reads counters; assignments change solely through the API.
type BacklogMonitorJob struct {
	handler  queries.GetAssignmentBacklogQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBacklogMonitorJob creates a job that logs backlog counters on the given
// cron schedule.
func NewBacklogMonitorJob(
	handler queries.GetAssignmentBacklogQueryHandler,
	schedule string,
	logger *slog.Logger,
) *BacklogMonitorJob {
	return &BacklogMonitorJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "backlog_monitor_job"),
	}
}

// Start begins periodic backlog reporting.
func (j *BacklogMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetAssignmentBacklogQuery()

		backlog, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog monitor job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Dispatch backlog",
			"unassigned_orders", backlog.UnassignedOrders,
			"outstanding_assignments", backlog.OutstandingAssignments,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog monitor job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backlog monitor job.
func (j *BacklogMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog monitor job stopped")
}
