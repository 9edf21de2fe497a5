package ports

import (
	"context"

	"github.com/google/uuid"
)

// Event is handed to every handler of a single emission.
// It carries no payload; the ID only correlates log lines.
type Event struct {
	ID   uuid.UUID
	Name string
}

// EventHandler is a function that handles a named event
type EventHandler func(ctx context.Context, event Event) error

// EventBus defines the interface for our in-process dispatcher
type EventBus interface {
	// Emit synchronously invokes every handler registered for name,
	// in registration order.
	Emit(ctx context.Context, name string) error

	// On registers a handler for a specific event name
	On(name string, handler EventHandler)

	// HandlerCount returns how many handlers are registered for name
	HandlerCount(name string) int
}

// EventSubscriber defines the "plugin" interface for chain handlers.
type EventSubscriber interface {
	// EventName returns the event this subscriber listens to (e.g., "event1")
	EventName() string
	// Handle processes one emission.
	Handle(ctx context.Context, event Event) error
}
