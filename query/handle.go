package query

import (
	"context"
	"sync"

	"github.com/polypuls3/polypulse/types"
)

// Fetcher performs a read for the given parameters
type Fetcher[P any, T any] func(ctx context.Context, params P) Envelope[T]

// Query tracks the latest read for changing parameters. A newer Issue or Refetch supersedes any read still
// in flight: the older read's context is cancelled and its result is discarded.
type Query[P any, T any] struct {
	ctx   context.Context
	fetch Fetcher[P, T]

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	params     P
	issued     bool
	state      Envelope[T]
	settled    bool
	done       chan struct{}
}

// NewQuery returns an idle query. All reads run under ctx.
func NewQuery[P any, T any](ctx context.Context, fetch Fetcher[P, T]) *Query[P, T] {
	done := make(chan struct{})
	close(done)

	return &Query[P, T]{
		ctx:     ctx,
		fetch:   fetch,
		state:   Envelope[T]{ActiveSource: types.ActiveNone},
		settled: true,
		done:    done,
	}
}

// Issue starts a read for the given parameters. The previous data is dropped.
func (q *Query[P, T]) Issue(params P) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.params = params
	q.issued = true
	q.state = Envelope[T]{IsLoading: true, ActiveSource: types.ActiveNone}

	q.start(func(ctx context.Context) Envelope[T] { return q.fetch(ctx, params) })
}

// Refetch re-runs the last read, keeping the current data until the new result arrives. It does nothing before the first Issue.
func (q *Query[P, T]) Refetch() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.issued {
		return
	}

	last := q.state
	params := q.params
	q.state.IsLoading = true

	q.start(func(ctx context.Context) Envelope[T] {
		if last.refetch != nil {
			return last.Refetch(ctx)
		}

		return q.fetch(ctx, params)
	})
}

// Snapshot returns the current state
func (q *Query[P, T]) Snapshot() Envelope[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.state
}

// Wait blocks until the latest read settles and returns its result
func (q *Query[P, T]) Wait(ctx context.Context) (Envelope[T], error) {
	q.mu.Lock()
	done := q.done
	q.mu.Unlock()

	select {
	case <-done:
		return q.Snapshot(), nil
	case <-ctx.Done():
		return Envelope[T]{}, ctx.Err()
	}
}

// Close cancels the read in flight, if any
func (q *Query[P, T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cancel != nil {
		q.cancel()
	}
}

// start must be called with the lock held
func (q *Query[P, T]) start(run func(ctx context.Context) Envelope[T]) {
	if q.cancel != nil {
		q.cancel()
	}

	if q.settled {
		q.done = make(chan struct{})
		q.settled = false
	}

	q.generation++
	generation := q.generation

	ctx, cancel := context.WithCancel(q.ctx)
	q.cancel = cancel

	go func() {
		env := run(ctx)

		q.mu.Lock()
		defer q.mu.Unlock()

		if generation != q.generation {
			return
		}

		cancel()
		q.cancel = nil
		env.IsLoading = false
		q.state = env
		q.settled = true
		close(q.done)
	}()
}

// Refetcher is anything that can re-run its last read
type Refetcher interface {
	Refetch()
}

// OnWriteSuccess returns the callback a write flow invokes after a confirmed transaction so that dependent reads refresh
func OnWriteSuccess(refetchers ...Refetcher) func() {
	return func() {
		for _, r := range refetchers {
			r.Refetch()
		}
	}
}
