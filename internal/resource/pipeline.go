package resource

import (
	"context"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
)

// Stream is the emission sequence of one operation invocation: Loading
// at most once and always first, then exactly one terminal state, then
// the channel closes. Emissions are buffered so an abandoned consumer
// never strands the producing goroutine.
type Stream[T any] <-chan Resource[T]

// Go runs fn on its own goroutine and exposes it as a Stream. The
// stream emits Loading immediately, then Success with fn's value or
// Error with its classified failure. Cancelling ctx is delivered to fn;
// the producer still terminates and closes the stream on its own, so
// an in-flight call is never leaked.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Stream[T] {
	out := make(chan Resource[T], 2)
	go func() {
		defer close(out)
		out <- Loading[T]()
		value, err := fn(ctx)
		if err != nil {
			out <- Failure[T](apperr.Classify(err))
			return
		}
		out <- Success(value)
	}()
	return out
}

// Just returns an already-terminal stream carrying a single Success.
// Used when the value is available without doing any work, such as a
// cache hit.
func Just[T any](value T) Stream[T] {
	out := make(chan Resource[T], 1)
	out <- Success(value)
	close(out)
	return out
}

// Fail returns an already-terminal stream carrying a single Error.
// Used to fail fast before any work is started, such as parameter
// validation.
func Fail[T any](err error) Stream[T] {
	out := make(chan Resource[T], 1)
	out <- Failure[T](apperr.Classify(err))
	close(out)
	return out
}

// MapStream applies mapper to every Success emission of in, forwarding
// Loading and Error unchanged. The producer is not re-invoked.
func MapStream[T, R any](in Stream[T], mapper func(T) R) Stream[R] {
	out := make(chan Resource[R], 2)
	go func() {
		defer close(out)
		for r := range in {
			out <- Map(r, mapper)
		}
	}()
	return out
}

// Await drains the stream and returns its terminal state. If ctx ends
// before a terminal state arrives, a classified cancellation error is
// returned instead; the abandoned producer finishes on its own.
func Await[T any](ctx context.Context, s Stream[T]) Resource[T] {
	last := Loading[T]()
	for {
		select {
		case <-ctx.Done():
			return Failure[T](apperr.Classify(ctx.Err()))
		case r, ok := <-s:
			if !ok {
				if last.IsLoading() {
					return Failure[T](apperr.New(apperr.KindUnknown, "stream completed without a terminal state"))
				}
				return last
			}
			last = r
		}
	}
}

// Collect drains the stream and returns every emission in order.
// Intended for tests and one-shot consumers.
func Collect[T any](s Stream[T]) []Resource[T] {
	var out []Resource[T]
	for r := range s {
		out = append(out, r)
	}
	return out
}
