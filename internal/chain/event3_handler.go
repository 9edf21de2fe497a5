package chain

import (
	"EventChain/internal/core/domain"
	"EventChain/internal/core/ports"
	"EventChain/internal/shared/config"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// event3Handler starts the cycle: it prints its line and emits event1 on the next tick.
type event3Handler struct {
	bus       ports.EventBus
	scheduler ports.Scheduler
	out       io.Writer
	log       zerolog.Logger
}

func init() {
	RegisterHandler(NewEvent3Handler)
}

// NewEvent3Handler builds the handler that prints Event3 and emits event1 on the next tick.
func NewEvent3Handler(
	_ *config.Config,
	bus ports.EventBus,
	scheduler ports.Scheduler,
	out io.Writer,
	baseLogger *zerolog.Logger,
) ports.EventSubscriber {
	return &event3Handler{
		bus:       bus,
		scheduler: scheduler,
		out:       out,
		log:       baseLogger.With().Str("component", "event3_handler").Logger(),
	}
}

func (h *event3Handler) EventName() string {
	return domain.EventThree
}

func (h *event3Handler) Handle(ctx context.Context, event ports.Event) error {
	if _, err := fmt.Fprintln(h.out, domain.FiredLine(domain.EventThree)); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	h.scheduler.NextTick(emitTask(h.bus, domain.EventOne))
	h.log.Debug().Str("emission_id", event.ID.String()).Msg("Queued event1 for next tick")
	return nil
}
