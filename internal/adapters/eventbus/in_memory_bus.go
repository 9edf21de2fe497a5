package eventbus

import (
	"EventChain/internal/core/ports"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// inMemoryEventBus implements the ports.EventBus interface
type inMemoryEventBus struct {
	log      zerolog.Logger
	handlers map[string][]ports.EventHandler
	mu       sync.RWMutex
}

// NewInMemoryEventBus creates a new, empty event bus
func NewInMemoryEventBus(baseLogger *zerolog.Logger) ports.EventBus {
	return &inMemoryEventBus{
		log:      baseLogger.With().Str("component", "in_memory_bus").Logger(),
		handlers: make(map[string][]ports.EventHandler),
	}
}

// Emit invokes every handler registered for name, in registration order,
// on the caller's goroutine. The first failing handler stops the emission.
func (b *inMemoryEventBus) Emit(ctx context.Context, name string) error {
	// Snapshot under the lock so handlers are free to call On.
	b.mu.RLock()
	handlers := make([]ports.EventHandler, len(b.handlers[name]))
	copy(handlers, b.handlers[name])
	b.mu.RUnlock()

	if len(handlers) == 0 {
		// No handlers for this event, which is fine
		b.log.Debug().Str("event", name).Msg("Emitted event with no handlers")
		return nil
	}

	event := ports.Event{
		ID:   uuid.New(),
		Name: name,
	}
	log := b.log.With().Str("event", name).Str("emission_id", event.ID.String()).Logger()
	log.Debug().Int("handlers", len(handlers)).Msg("Emitting event")

	for i, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			log.Error().Err(err).Int("handler_index", i).Msg("Event handler failed")
			return fmt.Errorf("handler %d for %q: %w", i, name, err)
		}
	}

	return nil
}

// On registers a handler for a specific event name
func (b *inMemoryEventBus) On(name string, handler ports.EventHandler) {
	b.mu.Lock() // Lock for writing to the map
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)
	b.log.Info().Str("event", name).Int("handlers", len(b.handlers[name])).Msg("New handler registered for event")
}

// HandlerCount returns how many handlers are registered for name
func (b *inMemoryEventBus) HandlerCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[name])
}
