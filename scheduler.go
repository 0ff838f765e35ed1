package plot

import (
	"time"
)

// Scheduler queues deferred work: coalesced low-priority renders and the debounced entity-store rebuild. The default scheduler is timer-backed; tests substitute a manual one to run tasks deterministically.
type Scheduler interface {
	// Schedule runs f after delay and returns a cancel function. Cancelling after f has run is a no-op.
	Schedule(delay time.Duration, f func()) (cancel func())
}

// timerScheduler runs tasks on standard library timers.
type timerScheduler struct{}

func (timerScheduler) Schedule(delay time.Duration, f func()) func() {
	t := time.AfterFunc(delay, f)
	return func() { t.Stop() }
}

////////////////////////////////////////////////////////////////

// debouncer coalesces a burst of triggers into a single run of f after a trailing delay. Cancelling drops any pending run.
type debouncer struct {
	scheduler Scheduler
	delay     time.Duration
	f         func()
	cancel    func()
}

func newDebouncer(scheduler Scheduler, delay time.Duration, f func()) *debouncer {
	return &debouncer{scheduler: scheduler, delay: delay, f: f}
}

// Trigger schedules f after the trailing delay, replacing any pending run.
func (d *debouncer) Trigger() {
	if d.cancel != nil {
		d.cancel()
	}
	d.cancel = d.scheduler.Schedule(d.delay, func() {
		d.cancel = nil
		d.f()
	})
}

// Cancel drops any pending run.
func (d *debouncer) Cancel() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
