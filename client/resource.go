package client

import (
	"context"
	"sync"
)

// State is the lifecycle of a fetched resource.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Resource holds one fetched value with an explicit idle -> loading ->
// success|error lifecycle. The fetch is an explicit Load call, refetch is
// supported, and Close cancels an in-flight fetch.
//
// On failure the data resets to the zero value and the error is retained; the
// loading state always resolves, success or not.
type Resource[T any] struct {
	fetch func(context.Context) (T, error)

	mu     sync.Mutex
	gen    uint64
	state  State
	data   T
	err    error
	cancel context.CancelFunc
}

// NewResource wraps a fetch function; the resource starts idle with zero data.
func NewResource[T any](fetch func(context.Context) (T, error)) *Resource[T] {
	return &Resource[T]{fetch: fetch}
}

// Load runs the fetch and transitions the state machine. It returns the
// fetched value (or the zero value plus the error on failure). Starting a new
// Load cancels the previous in-flight one, and the newest Load always wins:
// each Load is tagged with a generation under the mutex, and a superseded
// fetch returns its result to its caller without committing it, so a canceled
// stale fetch can never overwrite a newer success.
func (r *Resource[T]) Load(ctx context.Context) (T, error) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.gen++
	gen := r.gen
	r.state = StateLoading
	r.mu.Unlock()

	data, err := r.fetch(fetchCtx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		if err != nil {
			var zero T
			return zero, err
		}
		return data, nil
	}
	if err != nil {
		var zero T
		r.data = zero
		r.err = err
		r.state = StateError
		return zero, err
	}
	r.data = data
	r.err = nil
	r.state = StateSuccess
	return data, nil
}

// Refetch re-runs the fetch.
func (r *Resource[T]) Refetch(ctx context.Context) (T, error) {
	return r.Load(ctx)
}

// Get returns the current value, state and error without fetching.
func (r *Resource[T]) Get() (T, State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data, r.state, r.err
}

// Close cancels any in-flight fetch. Safe to call more than once.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
