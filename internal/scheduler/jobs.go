package scheduler

import (
	"context"
)

// Ledger is the session store the jobs maintain.
type Ledger interface {
	Sweep() int
	ResetDaily() int
}

// AlertJanitor drops stale alert cooldowns.
type AlertJanitor interface {
	CleanupOldAlerts()
}

// Schedules holds the cron expressions for the ledger jobs.
type Schedules struct {
	Sweep      string
	DailyReset string
}

// Register schedules the idle sweep, the daily risk reset and, when
// janitor is non-nil, the hourly alert cleanup.
func Register(r *Runner, ledger Ledger, janitor AlertJanitor, s Schedules) error {
	if s.Sweep == "" {
		s.Sweep = DefaultSweepSchedule
	}
	if s.DailyReset == "" {
		s.DailyReset = DefaultResetSchedule
	}

	if _, err := r.Add("session-sweep", s.Sweep, func(context.Context) { ledger.Sweep() }); err != nil {
		return err
	}
	if _, err := r.Add("daily-reset", s.DailyReset, func(context.Context) { ledger.ResetDaily() }); err != nil {
		return err
	}
	if janitor != nil {
		if _, err := r.Add("alert-cleanup", cleanupSchedule, func(context.Context) { janitor.CleanupOldAlerts() }); err != nil {
			return err
		}
	}
	return nil
}
