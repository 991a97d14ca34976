// Package eventbus defines the contract for publishing domain events to
// statically registered handlers.
package eventbus

import (
	"context"

	"github.com/amirasaad/privplan/pkg/domain/events"
)

// HandlerFunc processes a single domain event. Returned errors are logged by
// the bus, never propagated to the emitter: a failing handler stalls its own
// saga, it does not poison the listener.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus defines the contract for emitting domain events and registering
// handlers per event type.
type Bus interface {
	Emit(ctx context.Context, event events.Event) error
	Register(eventType string, handler HandlerFunc)
}
