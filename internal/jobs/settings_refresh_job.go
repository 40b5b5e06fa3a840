package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// settingsRefresher is the slice of the settings provider the job needs.
type settingsRefresher interface {
	Refresh(ctx context.Context) error
}

// SettingsRefreshJob reloads the cached store settings snapshot on a schedule.
// Runs every minute; a back-office fee or notification change becomes
// effective on the next tick.
type SettingsRefreshJob struct {
	provider settingsRefresher
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSettingsRefreshJob creates a job refreshing the given settings provider.
func NewSettingsRefreshJob(provider settingsRefresher, logger *slog.Logger) *SettingsRefreshJob {
	return &SettingsRefreshJob{
		provider: provider,
		cron:     cron.New(),
		logger:   logger.With("component", "settings_refresh_job"),
	}
}

// Start begins the settings refresh job to run every minute.
// The snapshot is also refreshed once immediately so the service does not
// serve defaults for a whole minute after startup.
func (j *SettingsRefreshJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.provider.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Settings refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := j.provider.Refresh(ctx); err != nil {
		j.logger.WarnContext(ctx, "Initial settings refresh failed, serving defaults", "error", err)
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Settings refresh job started (running every minute)")
	return nil
}

// Stop stops the settings refresh job.
func (j *SettingsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settings refresh job stopped")
}
