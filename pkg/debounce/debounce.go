package debounce

import (
	"sync"
	"time"
)

// A Debouncer delivers only the latest value after the input has been
// quiet for the configured delay. Every Input strictly resets the
// timer and cancels the prior pending delivery; superseded values are
// dropped silently, never signaled as errors.
//
// Each Debouncer owns exactly one outstanding timer slot at a time.
// The callback runs with the debouncer locked, so a superseded value
// is never delivered once a newer Input has returned. The callback
// must not call Input or Stop.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(T)
	timer   *time.Timer
	gen     uint64
	stopped bool
}

func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if fn == nil {
		panic("debounce: nil callback") // develop mistake
	}
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Input supersedes any pending delivery with v.
func (d *Debouncer[T]) Input(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	// Stop cannot cancel a timer whose callback is already in flight,
	// so the callback re-checks the generation under the lock.
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		if d.stopped || d.gen != gen {
			return
		}
		d.fn(v)
	})
}

// Stop cancels the pending delivery, if any. The Debouncer accepts no
// further input afterwards.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
