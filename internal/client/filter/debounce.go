package filter

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a live search is evaluated.
const DefaultDelay = 300 * time.Millisecond

// Debouncer runs fn with the most recent term once no new term arrived for
// the configured delay. Earlier schedules are superseded, never queued.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(term string)
	timer   *time.Timer
	gen     uint64
	stopped bool
}

func NewDebouncer(delay time.Duration, fn func(term string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Schedule (re)arms the timer for term. It is a no-op after Stop.
func (d *Debouncer) Schedule(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := !d.stopped && gen == d.gen
		d.mu.Unlock()
		// a timer that already fired before Stop/Schedule could cancel it
		// must not run a superseded term
		if current {
			d.fn(term)
		}
	})
}

// Stop cancels any pending evaluation for good.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
