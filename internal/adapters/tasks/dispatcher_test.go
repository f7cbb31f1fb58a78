package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestDispatcher_RunsHandler(t *testing.T) {
	d := NewDispatcher(testLogger(), 2, 8)

	var mu sync.Mutex
	var got []string
	d.Register("greet", func(ctx context.Context, params map[string]string) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, params["name"])
		return nil
	})
	d.Start()

	require.NoError(t, d.Enqueue(context.Background(), "greet", map[string]string{"name": "Alice"}))
	require.NoError(t, d.Enqueue(context.Background(), "greet", map[string]string{"name": "Bob"}))
	d.Close()

	mu.Lock()
	defer mu.Unlock()
	require.ElementsMatch(t, []string{"Alice", "Bob"}, got)
}

func TestDispatcher_UnknownJob(t *testing.T) {
	d := NewDispatcher(testLogger(), 1, 1)
	d.Start()
	defer d.Close()

	err := d.Enqueue(context.Background(), "nope", nil)
	require.Error(t, err)
}

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	d := NewDispatcher(testLogger(), 1, 1)
	d.retryDelay = time.Millisecond

	var mu sync.Mutex
	attempts := 0
	d.Register("flaky", func(ctx context.Context, params map[string]string) error {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	d.Start()

	require.NoError(t, d.Enqueue(context.Background(), "flaky", nil))
	d.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 3, attempts)
}

func TestDispatcher_FullQueueFailsFast(t *testing.T) {
	d := NewDispatcher(testLogger(), 1, 1)
	release := make(chan struct{})
	d.Register("slow", func(ctx context.Context, params map[string]string) error {
		<-release
		return nil
	})
	d.Start()

	// First task occupies the worker, second fills the buffer; the third
	// must be rejected rather than block the caller.
	require.NoError(t, d.Enqueue(context.Background(), "slow", nil))
	var err error
	for i := 0; i < 50; i++ {
		if err = d.Enqueue(context.Background(), "slow", nil); err != nil {
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.Error(t, err)

	close(release)
	d.Close()
}
