package resource_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_SuccessEmitsLoadingThenSuccess(t *testing.T) {
	stream := resource.Go(context.Background(), func(ctx context.Context) (string, error) {
		return "payload", nil
	})

	emissions := resource.Collect(stream)

	require.Len(t, emissions, 2)
	assert.True(t, emissions[0].IsLoading())
	assert.True(t, emissions[1].IsSuccess())
	assert.Equal(t, "payload", emissions[1].Value())
}

func TestGo_FailureEmitsLoadingThenClassifiedError(t *testing.T) {
	stream := resource.Go(context.Background(), func(ctx context.Context) (string, error) {
		return "", apperr.New(apperr.KindNotFound, "no such thing")
	})

	emissions := resource.Collect(stream)

	require.Len(t, emissions, 2)
	assert.True(t, emissions[0].IsLoading())
	assert.True(t, emissions[1].IsError())
	assert.True(t, apperr.IsKind(emissions[1].Err(), apperr.KindNotFound))
}

func TestGo_PlainErrorIsClassifiedAsUnknown(t *testing.T) {
	stream := resource.Go(context.Background(), func(ctx context.Context) (int, error) {
		return 0, fmt.Errorf("unexpected")
	})

	terminal := resource.Await(context.Background(), stream)

	assert.True(t, terminal.IsError())
	assert.True(t, apperr.IsKind(terminal.Err(), apperr.KindUnknown))
}

func TestGo_AbandonedConsumerDoesNotStrandProducer(t *testing.T) {
	done := make(chan struct{})
	_ = resource.Go(context.Background(), func(ctx context.Context) (int, error) {
		defer close(done)
		return 1, nil
	})

	// Emissions are buffered, so the producer completes even though
	// nobody reads the stream.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("producer blocked after consumer walked away")
	}
}

func TestGo_CancellationReachesProducer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stream := resource.Go(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	emissions := resource.Collect(stream)

	require.Len(t, emissions, 2)
	assert.True(t, emissions[1].IsError())
	assert.True(t, apperr.IsKind(emissions[1].Err(), apperr.KindNetwork))
}

func TestJust_EmitsSingleSuccess(t *testing.T) {
	emissions := resource.Collect(resource.Just([]int{1, 2, 3}))

	require.Len(t, emissions, 1)
	assert.True(t, emissions[0].IsSuccess())
	assert.Equal(t, []int{1, 2, 3}, emissions[0].Value())
}

func TestFail_EmitsSingleError(t *testing.T) {
	emissions := resource.Collect(resource.Fail[int](apperr.NewValidation("bad input")))

	require.Len(t, emissions, 1)
	assert.True(t, emissions[0].IsError())
	assert.True(t, apperr.IsKind(emissions[0].Err(), apperr.KindValidation))
}

func TestMapStream_TransformsSuccessAndForwardsTheRest(t *testing.T) {
	upstream := resource.Go(context.Background(), func(ctx context.Context) ([]int, error) {
		return []int{3, 1, 2}, nil
	})

	mapped := resource.MapStream(upstream, func(values []int) int {
		return len(values)
	})

	emissions := resource.Collect(mapped)

	require.Len(t, emissions, 2)
	assert.True(t, emissions[0].IsLoading())
	assert.True(t, emissions[1].IsSuccess())
	assert.Equal(t, 3, emissions[1].Value())
}

func TestMapStream_ErrorPassesThroughUnchanged(t *testing.T) {
	upstream := resource.Fail[[]int](apperr.New(apperr.KindRateLimited, "slow down"))

	mapped := resource.MapStream(upstream, func([]int) int { return 0 })
	terminal := resource.Await(context.Background(), mapped)

	assert.True(t, terminal.IsError())
	assert.True(t, apperr.IsKind(terminal.Err(), apperr.KindRateLimited))
}

func TestAwait_ReturnsTerminalState(t *testing.T) {
	stream := resource.Go(context.Background(), func(ctx context.Context) (string, error) {
		return "done", nil
	})

	terminal := resource.Await(context.Background(), stream)

	assert.True(t, terminal.IsSuccess())
	assert.Equal(t, "done", terminal.Value())
}

func TestAwait_ContextCancellationWins(t *testing.T) {
	blocked := make(chan struct{})
	defer close(blocked)

	stream := resource.Go(context.Background(), func(ctx context.Context) (string, error) {
		<-blocked
		return "late", nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	terminal := resource.Await(ctx, stream)

	assert.True(t, terminal.IsError())
	assert.True(t, apperr.IsKind(terminal.Err(), apperr.KindNetwork))
}
