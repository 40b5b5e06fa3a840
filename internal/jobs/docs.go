// Package jobs provides scheduled background tasks for the pizzeria service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order core.
//
// # Available Jobs
//
// 1. SettingsRefreshJob - Periodically reloads the store settings snapshot
// (delivery fee, notification switch) so back-office changes take effect
// without a restart.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(settingsProvider, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot stays in effect; the
// job retries on its next tick.
package jobs
