// Package infra provides shared infrastructure components for the Wikipedia
// MCP server.
package infra

import (
	"context"
	"sync"
)

// Slot is a write-once container filled on first access. Concurrent callers
// of an empty slot coalesce onto a single fill: one goroutine runs the fill
// function and the rest wait for its result. A failed fill leaves the slot
// empty so a later call can try again; a successful fill is permanent.
type Slot[T any] struct {
	mu       sync.Mutex
	filled   bool
	value    T
	inflight *slotFill[T]
}

// slotFill tracks a fill in progress with waiters
type slotFill[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Load returns the slot's value, running fn to produce it if the slot is
// empty. If another goroutine is already filling the slot, Load waits for
// that fill instead of starting its own.
func (s *Slot[T]) Load(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	s.mu.Lock()

	if s.filled {
		v := s.value
		s.mu.Unlock()
		return v, nil
	}

	if f := s.inflight; f != nil {
		s.mu.Unlock()

		select {
		case <-f.done:
			return f.value, f.err
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}

	f := &slotFill[T]{done: make(chan struct{})}
	s.inflight = f
	s.mu.Unlock()

	f.value, f.err = fn(ctx)

	s.mu.Lock()
	if f.err == nil {
		s.value = f.value
		s.filled = true
	}
	s.inflight = nil
	s.mu.Unlock()

	close(f.done)
	return f.value, f.err
}

// Peek returns the stored value without triggering a fill.
func (s *Slot[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.filled
}
