package scheduler

import (
	"context"
	"time"

	"cryptodigest/internal/ports"
)

// Daily fires a job once per day at a fixed UTC wall-clock time. At most one
// run is in flight; a run that overlaps the next slot simply delays it.
type Daily struct {
	hour   int
	minute int
	now    func() time.Time
	stop   chan struct{}
}

var _ ports.Scheduler = (*Daily)(nil)

// NewDaily builds a scheduler for the given UTC hour and minute.
func NewDaily(hour, minute int) *Daily {
	return &Daily{hour: hour, minute: minute, now: time.Now}
}

// Start launches the timer goroutine.
func (d *Daily) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	if d.stop != nil {
		return nil
	}
	d.stop = make(chan struct{})

	go func() {
		for {
			timer := time.NewTimer(time.Until(NextRun(d.now().UTC(), d.hour, d.minute)))

			select {
			case t := <-timer.C:
				job(t)
			case <-ctx.Done():
				timer.Stop()
				return
			case <-d.stop:
				timer.Stop()
				return
			}
		}
	}()

	return nil
}

// Stop halts the timer goroutine.
func (d *Daily) Stop(ctx context.Context) error {
	if d.stop == nil {
		return nil
	}
	close(d.stop)
	d.stop = nil
	return nil
}

// NextRun returns the next occurrence of hour:minute UTC strictly after now.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
