// Package async provides a bounded worker pool for latency-bound store
// operations, with results delivered through single-use channels.
package async

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
)

// ErrPoolClosed is delivered to submissions that arrive after Close.
var ErrPoolClosed = errors.New("worker pool is closed")

// Result carries the outcome of a background operation. Exactly one of the
// two channels of information is meaningful: Err for failures, Value otherwise.
// Callers must branch on Err before reading Value, a store failure is never
// the same thing as a false result.
type Result[T any] struct {
	Value T
	Err   error
}

// Pool runs submitted tasks on a fixed number of worker goroutines. Tasks are
// short-lived and latency-bound, so a small pool with a modest queue is enough;
// the queue bounds how much work can pile up when the store is slow.
type Pool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
	logger *slog.Logger
}

// NewPool starts size workers draining a queue of queueSize pending tasks.
func NewPool(size, queueSize int, logger *slog.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{
		tasks:  make(chan func(), queueSize),
		logger: logger,
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Close stops accepting work and waits for in-flight tasks to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

// submit enqueues a task, reporting false if the pool is closed.
func (p *Pool) submit(task func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		if p.logger != nil {
			p.logger.Warn("task submitted after worker pool close")
		}

		return false
	}
	p.tasks <- task

	return true
}

// Submit schedules fn on the pool and returns a buffered channel that will
// receive exactly one Result. The channel is closed after delivery, so a
// caller that only cares about completion can range over it.
func Submit[T any](p *Pool, ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)

	ok := p.submit(func() {
		defer close(out)

		if err := ctx.Err(); err != nil {
			out <- Result[T]{Err: errors.WithStack(err)}

			return
		}

		value, err := fn(ctx)
		out <- Result[T]{Value: value, Err: err}
	})
	if !ok {
		out <- Result[T]{Err: ErrPoolClosed}
		close(out)
	}

	return out
}

// Completed returns an already-resolved channel carrying the given value.
// Used when a result is known synchronously but the caller expects the
// asynchronous shape.
func Completed[T any](value T) <-chan Result[T] {
	out := make(chan Result[T], 1)
	out <- Result[T]{Value: value}
	close(out)

	return out
}

// Failed returns an already-resolved channel carrying the given error.
func Failed[T any](err error) <-chan Result[T] {
	out := make(chan Result[T], 1)
	out <- Result[T]{Err: err}
	close(out)

	return out
}

// Await blocks until the result arrives or the context is done.
func Await[T any](ctx context.Context, ch <-chan Result[T]) (T, error) {
	var zero T

	select {
	case <-ctx.Done():
		return zero, errors.WithStack(ctx.Err())
	case res, ok := <-ch:
		if !ok {
			return zero, errors.New("result channel closed without a value")
		}

		return res.Value, res.Err
	}
}
