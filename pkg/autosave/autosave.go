// Package autosave debounces edit events into a single deferred save.
package autosave

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period after the last edit before a save fires.
const DefaultDelay = 2 * time.Second

// State tracks where the coordinator is in its save cycle.
type State int

const (
	// Idle means no pending edit.
	Idle State = iota
	// Dirty means an edit occurred and the timer is armed (or a save failed
	// and is waiting to be retried).
	Dirty
	// Saving means a write is in flight.
	Saving
)

// Coordinator owns one cancelable timer for one edit target. Every Edit
// re-arms the timer; when it fires, the save callback runs once with the
// latest state. The callback returns true on success or when there was
// nothing to save (an empty entry); false leaves the coordinator Dirty so a
// later edit or flush retries.
type Coordinator struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	state State
	save  func() bool
}

// New builds a coordinator around the save callback. A zero delay means
// DefaultDelay.
func New(delay time.Duration, save func() bool) *Coordinator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Coordinator{delay: delay, save: save}
}

// Edit records an edit and (re)starts the quiet-period timer, coalescing
// rapid edits into one deferred save.
func (c *Coordinator) Edit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Dirty
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.fire)
}

// fire runs the deferred save. Silent: failures leave the state Dirty for
// the next cycle; successes return to Idle unless another edit landed while
// the save ran.
func (c *Coordinator) fire() {
	c.mu.Lock()
	if c.state != Dirty {
		c.mu.Unlock()
		return
	}
	c.state = Saving
	save := c.save
	c.mu.Unlock()

	ok := save()

	c.mu.Lock()
	c.finish(ok)
	c.mu.Unlock()
}

// finish records the outcome of a save. An Edit that landed while the save
// was in flight has already moved the state back to Dirty; that edit is not
// covered by this save, so Idle is only entered from Saving. Callers hold
// the lock.
func (c *Coordinator) finish(ok bool) {
	if ok {
		if c.state == Saving {
			c.state = Idle
		}
	} else {
		c.state = Dirty
	}
}

// Flush cancels any pending timer and saves immediately. This is the manual
// save path; the caller surfaces the returned success to the user.
func (c *Coordinator) Flush() bool {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.state = Saving
	save := c.save
	c.mu.Unlock()

	ok := save()

	c.mu.Lock()
	c.finish(ok)
	c.mu.Unlock()
	return ok
}

// Dirty reports whether an edit is waiting to be persisted.
func (c *Coordinator) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Dirty
}

// State returns the current save-cycle state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close cancels any pending timer. Call on teardown so no save fires after
// the owning view is gone.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.state = Idle
}
