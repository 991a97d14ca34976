package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/privplan/pkg/domain/events"
	"github.com/amirasaad/privplan/pkg/eventbus"
)

// MemoryEventBus is a synchronous in-memory implementation of the Bus
// interface. Handlers run inline on the emitting goroutine, which makes saga
// runs deterministic in tests.
type MemoryEventBus struct {
	handlers  map[string][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a new in-memory event bus for event-driven communication.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers:  make(map[string][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]events.Event, 0),
	}
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type. Handler
// errors are logged, not returned: the emitter must not be poisoned by a
// stalled saga step.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	eventType := event.Type()
	b.mu.RLock()
	handlers := b.handlers[eventType]
	b.mu.RUnlock()

	b.mu.Lock()
	b.published = append(b.published, event)
	b.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("failed to process event", "type", eventType, "event", event, "error", err)
		}
	}
	return nil
}

// ClearPublished clears the list of published events. This is useful for testing.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]events.Event, 0)
}

// Published returns the list of published events. This is useful for testing.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.published
}

// Ensure MemoryEventBus implements the Bus interface.
var _ eventbus.Bus = (*MemoryEventBus)(nil)

// MemoryAsyncEventBus dispatches events on worker goroutines, approximating
// the delivery semantics of the transport buses without an external broker.
type MemoryAsyncEventBus struct {
	handlers map[string][]eventbus.HandlerFunc
	mu       sync.RWMutex
	eventCh  chan struct {
		ctx   context.Context
		event events.Event
	}
	log *slog.Logger
}

// NewWithMemoryAsync creates a new asynchronous in-memory event bus.
func NewWithMemoryAsync(logger *slog.Logger) *MemoryAsyncEventBus {
	b := &MemoryAsyncEventBus{
		handlers: make(map[string][]eventbus.HandlerFunc),
		eventCh: make(chan struct {
			ctx   context.Context
			event events.Event
		}, 100),
	}
	b.log = logger.With("bus", "memory-async")
	go b.process()
	return b
}

func (b *MemoryAsyncEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}

func (b *MemoryAsyncEventBus) Emit(ctx context.Context, event events.Event) error {
	b.eventCh <- struct {
		ctx   context.Context
		event events.Event
	}{ctx, event}
	return nil
}

func (b *MemoryAsyncEventBus) process() {
	for w := range b.eventCh {
		go func(w struct {
			ctx   context.Context
			event events.Event
		}) {
			b.mu.RLock()
			handlers := append([]eventbus.HandlerFunc{}, b.handlers[w.event.Type()]...)
			b.mu.RUnlock()
			for _, handler := range handlers {
				func() {
					defer func() {
						if r := recover(); r != nil {
							b.log.Error("panic recovered in event handler", "type", w.event.Type(), "event", w.event, "panic", r)
						}
					}()
					if err := handler(w.ctx, w.event); err != nil {
						b.log.Error("failed to process event", "type", w.event.Type(), "event", w.event, "error", err)
					}
				}()
			}
		}(w)
	}
}

// Ensure MemoryAsyncEventBus implements the Bus interface.
var _ eventbus.Bus = (*MemoryAsyncEventBus)(nil)
