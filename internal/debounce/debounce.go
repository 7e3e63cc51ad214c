// Package debounce collapses bursts of signals into one action that runs
// after a quiet period.
package debounce

import "time"

// Debouncer holds at most one pending deadline. A new signal replaces it.
// It is polled by the caller's loop and starts no goroutines.
type Debouncer struct {
	delay    time.Duration
	deadline time.Time
	pending  bool
}

// New returns a debouncer with the given quiet period.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Signal cancels any pending deadline and schedules a new one at now+delay.
func (d *Debouncer) Signal(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.pending = true
}

// Fire reports whether the pending deadline has passed. It returns true at
// most once per burst.
func (d *Debouncer) Fire(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether a signal is waiting for its quiet period.
func (d *Debouncer) Pending() bool { return d.pending }

// Cancel drops the pending deadline, if any.
func (d *Debouncer) Cancel() { d.pending = false }
