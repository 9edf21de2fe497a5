package chain

import (
	"EventChain/internal/adapters/eventbus"
	"EventChain/internal/adapters/eventloop"
	"EventChain/internal/core/domain"
	"EventChain/internal/core/ports"
	"EventChain/internal/shared/config"
	"context"
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Orchestrator wires the dispatcher, the loop and the handlers for one run.
type Orchestrator struct {
	cfg        *config.Config
	clock      clockwork.Clock
	out        io.Writer
	baseLogger *zerolog.Logger
	log        zerolog.Logger
}

// NewOrchestrator creates a new chain orchestrator.
func NewOrchestrator(
	cfg *config.Config,
	clock clockwork.Clock,
	out io.Writer,
	baseLogger *zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		clock:      clock,
		out:        out,
		baseLogger: baseLogger,
		log:        baseLogger.With().Str("component", "orchestrator").Logger(),
	}
}

// Start emits the first event and runs the chain until ctx is cancelled,
// the cycle limit is reached, or a handler fails.
func (o *Orchestrator) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// 1. Create the scheduler and the dispatcher
	loop := eventloop.NewLoop(o.clock, o.baseLogger)
	bus := eventbus.NewInMemoryEventBus(o.baseLogger)

	// 2. Register handlers
	RegisterAllHandlers(o.cfg, bus, loop, o.out, o.baseLogger)

	// 3. Cycle limit goes after the printing handler so the last line still shows
	if o.cfg.Chain.MaxCycles > 0 {
		bus.On(domain.EventOne, o.cycleLimiter(cancel))
	}

	o.log.Info().
		Dur("event2_delay", o.cfg.Chain.Event2Delay).
		Dur("event1_delay", o.cfg.Chain.Event1Delay).
		Int("max_cycles", o.cfg.Chain.MaxCycles).
		Msg("Starting event chain")

	// 4. Kick off synchronously, then hand over to the loop
	if err := bus.Emit(ctx, domain.EventStart); err != nil {
		return fmt.Errorf("initial emit failed: %w", err)
	}
	if err := loop.Run(ctx); err != nil {
		return fmt.Errorf("event chain failed: %w", err)
	}

	o.log.Info().Msg("Event chain stopped")
	return nil
}

// cycleLimiter counts event1 firings and cancels the run at the limit.
func (o *Orchestrator) cycleLimiter(cancel context.CancelFunc) ports.EventHandler {
	fired := 0
	return func(ctx context.Context, event ports.Event) error {
		fired++
		if fired >= o.cfg.Chain.MaxCycles {
			o.log.Info().Int("cycles", fired).Msg("Cycle limit reached, stopping")
			cancel()
		}
		return nil
	}
}
