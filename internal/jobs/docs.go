// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Assignment state never changes in the background: every transition is
// triggered by an API call, and the jobs here are read-only.
//
// # Available Jobs
//
// 1. BacklogMonitorJob - periodically logs the number of unassigned orders
// and outstanding assignments, giving operators backlog visibility without
// polling the API.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(backlogHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
