// Package debounce delays a rapidly changing value until it has been quiet
// for a full window, so only the last change in a burst reaches consumers.
package debounce

import (
	"sync"
	"time"

	"github.com/mitchellh/copystructure"
)

// DefaultDelay is the quiet period used when none is configured.
const DefaultDelay = 300 * time.Millisecond

// AfterFunc schedules f after d and returns a function that cancels it.
// It matches time.AfterFunc so tests can swap in a manual clock.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

// Options configures a Buffer.
type Options[T any] struct {
	Delay time.Duration
	// OnSettle runs, outside the buffer lock, each time a value settles.
	OnSettle func(T)
	// AfterFunc overrides the timer implementation.
	AfterFunc AfterFunc
	// Copy overrides deep snapshotting.
	Copy func(T) T
}

// Buffer holds the settled snapshot of a source value.
type Buffer[T any] struct {
	mu sync.Mutex

	delay     time.Duration
	afterFunc AfterFunc
	copyFn    func(T) T
	onSettle  func(T)

	settled T
	pending T
	stop    func() bool
	// generation 递增后，旧定时器触发时直接丢弃
	generation uint64
}

// New returns a Buffer whose settled value is a snapshot of initial.
func New[T any](initial T, opts Options[T]) *Buffer[T] {
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	after := opts.AfterFunc
	if after == nil {
		after = func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		}
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = deepCopy[T]
	}

	return &Buffer[T]{
		delay:     delay,
		afterFunc: after,
		copyFn:    copyFn,
		onSettle:  opts.OnSettle,
		settled:   copyFn(initial),
	}
}

// Delay returns the quiet period.
func (b *Buffer[T]) Delay() time.Duration { return b.delay }

// Value returns the last settled snapshot.
func (b *Buffer[T]) Value() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.copyFn(b.settled)
}

// Pending reports whether a change is waiting for the quiet period to end.
func (b *Buffer[T]) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stop != nil
}

// Observe records a change to the source. Any pending timer is cancelled and
// the quiet period restarts.
func (b *Buffer[T]) Observe(v T) {
	snapshot := b.copyFn(v)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stop != nil {
		b.stop()
	}
	b.generation++
	gen := b.generation
	b.pending = snapshot
	b.stop = b.afterFunc(b.delay, func() { b.fire(gen) })
}

func (b *Buffer[T]) fire(gen uint64) {
	b.mu.Lock()
	if gen != b.generation || b.stop == nil {
		b.mu.Unlock()
		return
	}
	value := b.settleLocked()
	b.mu.Unlock()

	if b.onSettle != nil {
		b.onSettle(value)
	}
}

func (b *Buffer[T]) settleLocked() T {
	b.settled = b.pending
	var zero T
	b.pending = zero
	b.stop = nil
	return b.copyFn(b.settled)
}

// Flush settles a pending change immediately. It reports whether there was
// anything to flush.
func (b *Buffer[T]) Flush() bool {
	b.mu.Lock()
	if b.stop == nil {
		b.mu.Unlock()
		return false
	}
	b.stop()
	b.generation++
	value := b.settleLocked()
	b.mu.Unlock()

	if b.onSettle != nil {
		b.onSettle(value)
	}
	return true
}

// Stop discards a pending change without settling it.
func (b *Buffer[T]) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop != nil {
		b.stop()
		b.stop = nil
	}
	b.generation++
	var zero T
	b.pending = zero
}

func deepCopy[T any](v T) T {
	out, err := copystructure.Copy(v)
	if err != nil {
		return v
	}
	copied, ok := out.(T)
	if !ok {
		return v
	}
	return copied
}
