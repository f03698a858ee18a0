package utils

import (
	"sync"
	"time"
)

// Debouncer provides a way to debounce function calls
type Debouncer struct {
	mutex      sync.Mutex
	timer      *time.Timer
	pending    func()
	lastCalled time.Time
}

// Debounce calls the provided function after the specified duration,
// canceling any previous pending calls
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn

	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		run := d.pending
		d.pending = nil
		d.lastCalled = time.Now()
		d.timer = nil
		d.mutex.Unlock()
		if run != nil {
			run()
		}
	})
}

// Flush runs the pending call now, if any, and cancels its timer.
// It reports whether a call was run.
func (d *Debouncer) Flush() bool {
	d.mutex.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	run := d.pending
	d.pending = nil
	if run != nil {
		d.lastCalled = time.Now()
	}
	d.mutex.Unlock()

	if run == nil {
		return false
	}
	run()
	return true
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.pending != nil
}

// LastCalled returns when the debounced function last ran.
func (d *Debouncer) LastCalled() time.Time {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.lastCalled
}
