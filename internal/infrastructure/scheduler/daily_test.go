package scheduler

import (
	"context"
	"testing"
	"time"
)

func TestNextRunLaterToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 5, 7, 30, 0, 0, time.UTC)
	next := NextRun(now, 9, 0)

	want := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("NextRun = %v, want %v", next, want)
	}
}

func TestNextRunRollsToTomorrow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 5, 10, 15, 0, 0, time.UTC)
	next := NextRun(now, 9, 0)

	want := time.Date(2026, time.March, 6, 9, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("NextRun = %v, want %v", next, want)
	}
}

func TestNextRunExactTimeRollsForward(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	next := NextRun(now, 9, 0)

	if !next.After(now) {
		t.Fatalf("NextRun must be strictly after now, got %v", next)
	}
	if next.Day() != 6 {
		t.Fatalf("expected next day, got %v", next)
	}
}

func TestDailyFiresScheduledJob(t *testing.T) {
	t.Parallel()

	d := NewDaily(9, 0)
	// Freeze the scheduler's clock before 09:00 on a past day so the
	// computed slot is already behind the real clock and fires at once.
	d.now = func() time.Time {
		return time.Date(2026, time.March, 5, 8, 59, 0, 0, time.UTC)
	}

	fired := make(chan time.Time, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	job := func(at time.Time) {
		select {
		case fired <- at:
		default:
		}
	}
	if err := d.Start(ctx, job); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer d.Stop(context.Background())

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("job never fired")
	}
}

func TestDailyStopPreventsRuns(t *testing.T) {
	t.Parallel()

	d := NewDaily(9, 0)
	fired := make(chan time.Time, 1)

	ctx := context.Background()
	if err := d.Start(ctx, func(at time.Time) { fired <- at }); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := d.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	select {
	case <-fired:
		t.Fatal("job fired after Stop")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStartWithoutJobIsNoop(t *testing.T) {
	t.Parallel()

	d := NewDaily(9, 0)
	if err := d.Start(context.Background(), nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
