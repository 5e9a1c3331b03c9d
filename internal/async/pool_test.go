package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPool_Submit_DeliversValue(t *testing.T) {
	pool := NewPool(3, 8, discardLogger())
	defer pool.Close()

	ch := Submit(pool, context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})

	value, err := Await(context.Background(), ch)
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestPool_Submit_DeliversError(t *testing.T) {
	pool := NewPool(1, 1, discardLogger())
	defer pool.Close()

	boom := errors.New("boom")
	ch := Submit(pool, context.Background(), func(ctx context.Context) (bool, error) {
		return false, boom
	})

	value, err := Await(context.Background(), ch)
	require.ErrorIs(t, err, boom)
	assert.False(t, value)
}

func TestPool_BoundedConcurrency(t *testing.T) {
	const size = 3

	pool := NewPool(size, 32, discardLogger())
	defer pool.Close()

	var running, peak atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		ch := Submit(pool, context.Background(), func(ctx context.Context) (struct{}, error) {
			cur := running.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)

			return struct{}{}, nil
		})
		go func() {
			defer wg.Done()
			_, _ = Await(context.Background(), ch)
		}()
	}

	wg.Wait()
	assert.LessOrEqual(t, peak.Load(), int32(size))
}

func TestPool_SubmitAfterClose(t *testing.T) {
	pool := NewPool(1, 1, discardLogger())
	pool.Close()

	ch := Submit(pool, context.Background(), func(ctx context.Context) (bool, error) {
		return true, nil
	})

	_, err := Await(context.Background(), ch)
	require.ErrorIs(t, err, ErrPoolClosed)
}

func TestPool_SubmitCancelledContext(t *testing.T) {
	pool := NewPool(1, 1, discardLogger())
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := Submit(pool, ctx, func(ctx context.Context) (bool, error) {
		t.Fatal("task must not run with a cancelled context")

		return false, nil
	})

	_, err := Await(context.Background(), ch)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompletedAndFailed(t *testing.T) {
	value, err := Await(context.Background(), Completed(7))
	require.NoError(t, err)
	assert.Equal(t, 7, value)

	boom := errors.New("boom")
	_, err = Await(context.Background(), Failed[int](boom))
	require.ErrorIs(t, err, boom)
}
