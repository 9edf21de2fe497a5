package chain

import (
	"EventChain/internal/core/domain"
	"EventChain/internal/core/ports"
	"EventChain/internal/shared/config"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// event1Handler prints its line and emits event2 after the configured delay.
type event1Handler struct {
	bus       ports.EventBus
	scheduler ports.Scheduler
	out       io.Writer
	delay     time.Duration
	log       zerolog.Logger
}

func init() {
	RegisterHandler(NewEvent1Handler)
}

// NewEvent1Handler builds the handler that prints Event1 and emits event2 after Chain.Event2Delay.
func NewEvent1Handler(
	cfg *config.Config,
	bus ports.EventBus,
	scheduler ports.Scheduler,
	out io.Writer,
	baseLogger *zerolog.Logger,
) ports.EventSubscriber {
	return &event1Handler{
		bus:       bus,
		scheduler: scheduler,
		out:       out,
		delay:     cfg.Chain.Event2Delay,
		log:       baseLogger.With().Str("component", "event1_handler").Logger(),
	}
}

func (h *event1Handler) EventName() string {
	return domain.EventOne
}

func (h *event1Handler) Handle(ctx context.Context, event ports.Event) error {
	if _, err := fmt.Fprintln(h.out, domain.FiredLine(domain.EventOne)); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	h.scheduler.After(h.delay, emitTask(h.bus, domain.EventTwo))
	h.log.Debug().Str("emission_id", event.ID.String()).Dur("delay", h.delay).Msg("Scheduled event2")
	return nil
}

// emitTask returns a task that emits name on bus.
func emitTask(bus ports.EventBus, name string) ports.Task {
	return func(ctx context.Context) error {
		return bus.Emit(ctx, name)
	}
}
