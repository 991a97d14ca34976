package eventbus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/privplan/pkg/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *events.WithdrawalSentToBank {
	return &events.WithdrawalSentToBank{}
}

func TestMemoryEventBus(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches to every handler for the type", func(t *testing.T) {
		bus := NewWithMemory(testLogger())
		var calls int
		handler := func(ctx context.Context, e events.Event) error {
			calls++
			return nil
		}
		bus.Register(events.EventTypeWithdrawalSentToBank.String(), handler)
		bus.Register(events.EventTypeWithdrawalSentToBank.String(), handler)

		require.NoError(t, bus.Emit(ctx, testEvent()))
		assert.Equal(t, 2, calls)
	})

	t.Run("ignores events with no registered handler", func(t *testing.T) {
		bus := NewWithMemory(testLogger())
		require.NoError(t, bus.Emit(ctx, testEvent()))
	})

	t.Run("handler errors are swallowed", func(t *testing.T) {
		bus := NewWithMemory(testLogger())
		bus.Register(events.EventTypeWithdrawalSentToBank.String(),
			func(ctx context.Context, e events.Event) error {
				return errors.New("stalled")
			})
		require.NoError(t, bus.Emit(ctx, testEvent()))
	})

	t.Run("records published events", func(t *testing.T) {
		bus := NewWithMemory(testLogger())
		require.NoError(t, bus.Emit(ctx, testEvent()))
		require.NoError(t, bus.Emit(ctx, testEvent()))
		assert.Len(t, bus.Published(), 2)

		bus.ClearPublished()
		assert.Empty(t, bus.Published())
	})

	t.Run("handlers may emit from within a handler", func(t *testing.T) {
		bus := NewWithMemory(testLogger())
		var completed bool
		bus.Register(events.EventTypeWithdrawalSentToBank.String(),
			func(ctx context.Context, e events.Event) error {
				return bus.Emit(ctx, &events.WithdrawalCompleted{})
			})
		bus.Register(events.EventTypeWithdrawalCompleted.String(),
			func(ctx context.Context, e events.Event) error {
				completed = true
				return nil
			})

		require.NoError(t, bus.Emit(ctx, testEvent()))
		assert.True(t, completed)
		assert.Len(t, bus.Published(), 2)
	})
}

func TestMemoryAsyncEventBus(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers on a worker goroutine", func(t *testing.T) {
		bus := NewWithMemoryAsync(testLogger())
		var mu sync.Mutex
		var calls int
		bus.Register(events.EventTypeWithdrawalSentToBank.String(),
			func(ctx context.Context, e events.Event) error {
				mu.Lock()
				calls++
				mu.Unlock()
				return nil
			})

		require.NoError(t, bus.Emit(ctx, testEvent()))
		assert.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return calls == 1
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("recovers from a panicking handler", func(t *testing.T) {
		bus := NewWithMemoryAsync(testLogger())
		bus.Register(events.EventTypeWithdrawalSentToBank.String(),
			func(ctx context.Context, e events.Event) error {
				panic("boom")
			})
		var mu sync.Mutex
		var delivered bool
		bus.Register(events.EventTypeWithdrawalCompleted.String(),
			func(ctx context.Context, e events.Event) error {
				mu.Lock()
				delivered = true
				mu.Unlock()
				return nil
			})

		require.NoError(t, bus.Emit(ctx, testEvent()))
		require.NoError(t, bus.Emit(ctx, &events.WithdrawalCompleted{}))
		assert.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return delivered
		}, time.Second, 5*time.Millisecond)
	})
}
