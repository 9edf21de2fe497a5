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

// event2Handler prints its line and emits event1 again after the configured delay.
type event2Handler struct {
	bus       ports.EventBus
	scheduler ports.Scheduler
	out       io.Writer
	delay     time.Duration
	log       zerolog.Logger
}

func init() {
	RegisterHandler(NewEvent2Handler)
}

// NewEvent2Handler builds the handler that prints Event2 and emits event1 after Chain.Event1Delay.
func NewEvent2Handler(
	cfg *config.Config,
	bus ports.EventBus,
	scheduler ports.Scheduler,
	out io.Writer,
	baseLogger *zerolog.Logger,
) ports.EventSubscriber {
	return &event2Handler{
		bus:       bus,
		scheduler: scheduler,
		out:       out,
		delay:     cfg.Chain.Event1Delay,
		log:       baseLogger.With().Str("component", "event2_handler").Logger(),
	}
}

func (h *event2Handler) EventName() string {
	return domain.EventTwo
}

func (h *event2Handler) Handle(ctx context.Context, event ports.Event) error {
	if _, err := fmt.Fprintln(h.out, domain.FiredLine(domain.EventTwo)); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	h.scheduler.After(h.delay, emitTask(h.bus, domain.EventOne))
	h.log.Debug().Str("emission_id", event.ID.String()).Dur("delay", h.delay).Msg("Scheduled event1")
	return nil
}
