// Package resource turns fallible asynchronous operations into
// three-state streams: Loading, then exactly one of Success or Error.
// Every use case composes on top of this type instead of hand-rolling
// try/catch plus manual UI-flag toggling at each call site.
package resource

// State discriminates the active variant of a Resource.
type State string

const (
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Resource is the tagged result of an asynchronous operation. Exactly
// one variant is active: Loading carries no payload, Success carries
// the value, Error carries the classified failure.
type Resource[T any] struct {
	state State
	value T
	err   error
}

func Loading[T any]() Resource[T] {
	return Resource[T]{state: StateLoading}
}

func Success[T any](value T) Resource[T] {
	return Resource[T]{state: StateSuccess, value: value}
}

func Failure[T any](err error) Resource[T] {
	return Resource[T]{state: StateError, err: err}
}

func (r Resource[T]) State() State {
	return r.state
}

func (r Resource[T]) IsLoading() bool {
	return r.state == StateLoading
}

func (r Resource[T]) IsSuccess() bool {
	return r.state == StateSuccess
}

func (r Resource[T]) IsError() bool {
	return r.state == StateError
}

// Value returns the success payload; the zero value when the resource
// is not in the success state.
func (r Resource[T]) Value() T {
	return r.value
}

// Err returns the failure; nil when the resource is not in the error
// state.
func (r Resource[T]) Err() error {
	return r.err
}

// OnLoading runs action when the loading variant is active, otherwise
// it is a no-op. Returns the resource for chaining.
func (r Resource[T]) OnLoading(action func()) Resource[T] {
	if r.IsLoading() {
		action()
	}
	return r
}

// OnSuccess runs action with the payload when the success variant is
// active, otherwise it is a no-op. Returns the resource for chaining.
func (r Resource[T]) OnSuccess(action func(value T)) Resource[T] {
	if r.IsSuccess() {
		action(r.value)
	}
	return r
}

// OnError runs action with the failure when the error variant is
// active, otherwise it is a no-op. Returns the resource for chaining.
func (r Resource[T]) OnError(action func(err error)) Resource[T] {
	if r.IsError() {
		action(r.err)
	}
	return r
}

// Map converts a Resource[T] into a Resource[R], transforming only the
// success payload. Loading and Error pass through unchanged.
func Map[T, R any](r Resource[T], mapper func(T) R) Resource[R] {
	switch r.state {
	case StateSuccess:
		return Success(mapper(r.value))
	case StateError:
		return Failure[R](r.err)
	default:
		return Loading[R]()
	}
}
