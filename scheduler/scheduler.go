// Package scheduler runs the daily Today_Time refresh.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"BEARSTY_server/global"
)

// ParseClock parses a UTC "HH:MM" time of day into an offset from midnight
func ParseClock(clock string) (time.Duration, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", clock, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// NextRun returns the first instant strictly after now at offset past UTC midnight
func NextRun(now time.Time, offset time.Duration) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(offset)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Job calls Run once a day at Offset past UTC midnight
type Job struct {
	Offset time.Duration
	Run    func(ctx context.Context) error
	Now    func() time.Time
}

// Start runs the job loop until ctx is cancelled. done is closed on return.
func (j *Job) Start(ctx context.Context) (done <-chan struct{}) {
	finished := make(chan struct{})
	now := j.Now
	if now == nil {
		now = time.Now
	}

	go func() {
		defer close(finished)
		for {
			timer := time.NewTimer(NextRun(now(), j.Offset).Sub(now()))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			if err := j.Run(ctx); err != nil {
				global.InternalLogger.Println("Problem: daily_refresh; Error: " + err.Error())
				continue
			}
			global.MonitorLogger.Println("Daily refresh done")
		}
	}()

	return finished
}
