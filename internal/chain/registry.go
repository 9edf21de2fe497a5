package chain

import (
	"EventChain/internal/core/ports"
	"EventChain/internal/shared/config"
	"io"

	"github.com/rs/zerolog"
)

// HandlerConstructor builds a chain handler from its dependencies.
// This allows us to pass dependencies from the orchestrator.
type HandlerConstructor func(
	cfg *config.Config,
	bus ports.EventBus,
	scheduler ports.Scheduler,
	out io.Writer,
	baseLogger *zerolog.Logger,
) ports.EventSubscriber

var handlerRegistry []HandlerConstructor

// RegisterHandler is called by handlers in their init() function
func RegisterHandler(constructor HandlerConstructor) {
	handlerRegistry = append(handlerRegistry, constructor)
}

// RegisterAllHandlers builds every registered handler and subscribes it
// to the bus, in registration order.
func RegisterAllHandlers(
	cfg *config.Config,
	bus ports.EventBus,
	scheduler ports.Scheduler,
	out io.Writer,
	baseLogger *zerolog.Logger,
) {
	log := baseLogger.With().Str("component", "chain_registry").Logger()

	for _, constructor := range handlerRegistry {
		handler := constructor(cfg, bus, scheduler, out, baseLogger)
		bus.On(handler.EventName(), handler.Handle)
	}

	log.Info().Int("count", len(handlerRegistry)).Msg("Registered chain handlers")
}
