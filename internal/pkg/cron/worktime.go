package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/utils"
)

// WorktimeJobs keeps recent summaries consistent with the committed sessions.
type WorktimeJobs struct {
	sweep        summary.SweepService
	interval     time.Duration
	lookbackDays int
	loc          *time.Location
	now          func() time.Time
}

func NewWorktimeJobs(sweep summary.SweepService, interval time.Duration, lookbackDays int, loc *time.Location) *WorktimeJobs {
	if loc == nil {
		loc = time.UTC
	}
	if lookbackDays >= summary.MaxSweepDays {
		lookbackDays = summary.MaxSweepDays - 1
	}
	return &WorktimeJobs{
		sweep:        sweep,
		interval:     interval,
		lookbackDays: lookbackDays,
		loc:          loc,
		now:          time.Now,
	}
}

func (j *WorktimeJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:     "recalculate_recent_summaries",
		Interval: j.interval,
		Fn:       j.RecalculateRecentSummaries,
	})
}

// RecalculateRecentSummaries sweeps every company over the lookback window ending today.
func (j *WorktimeJobs) RecalculateRecentSummaries(ctx context.Context) error {
	today := utils.DateOf(j.now(), j.loc)
	from := today.AddDate(0, 0, -j.lookbackDays)

	slog.Info("Cron: Starting summary sweep", "from", utils.FormatDate(from), "to", utils.FormatDate(today))

	result, err := j.sweep.Sweep(ctx, summary.SweepRequest{
		From: utils.FormatDate(from),
		To:   utils.FormatDate(today),
	})
	if err != nil {
		return fmt.Errorf("failed to sweep summaries: %w", err)
	}

	slog.Info("Cron: Summary sweep completed",
		"sessions_recalculated", result.SessionsRecalculated,
		"summaries_recalculated", result.SummariesRecalculated,
		"summaries_deleted", result.SummariesDeleted,
		"failures", result.Failures,
	)
	if result.Failures > 0 {
		return fmt.Errorf("summary sweep finished with %d failures", result.Failures)
	}
	return nil
}
