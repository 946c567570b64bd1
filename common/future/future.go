// Package future provides a minimal promise/future pair used to hand
// results out of background workers.
package future

import "sync"

// Future is a read handle on a value that may not have been produced
// yet. Await blocks until the producer has fulfilled the associated
// promise. A Future may be awaited multiple times and from multiple
// goroutines.
type Future[T any] struct {
	state *state[T]
}

// Promise is the write handle paired with a Future. It must be
// fulfilled exactly once.
type Promise[T any] struct {
	state *state[T]
}

type state[T any] struct {
	done  chan struct{}
	value T
	once  sync.Once
}

// Create produces a connected promise/future pair.
func Create[T any]() (Promise[T], Future[T]) {
	s := &state[T]{done: make(chan struct{})}
	return Promise[T]{state: s}, Future[T]{state: s}
}

// Fulfill resolves the future associated with this promise. Calls
// after the first have no effect.
func (p Promise[T]) Fulfill(value T) {
	p.state.once.Do(func() {
		p.state.value = value
		close(p.state.done)
	})
}

// Await blocks until the promise has been fulfilled and returns its
// value.
func (f Future[T]) Await() T {
	<-f.state.done
	return f.state.value
}
