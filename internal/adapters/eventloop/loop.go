package eventloop

import (
	"EventChain/internal/core/ports"
	"container/heap"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// ErrTaskFailed wraps the error of a task that made Run stop.
var ErrTaskFailed = errors.New("scheduled task failed")

// Loop is a single-threaded scheduler. Tasks only ever run on the
// goroutine that called Run, one at a time.
type Loop struct {
	clock clockwork.Clock
	log   zerolog.Logger

	mu     sync.Mutex
	ticks  []ports.Task
	timers timerQueue
	seq    uint64

	// wake is signalled when work is queued while Run is blocked.
	wake chan struct{}
}

var _ ports.Scheduler = (*Loop)(nil)

// NewLoop creates an empty loop driven by clock.
func NewLoop(clock clockwork.Clock, baseLogger *zerolog.Logger) *Loop {
	return &Loop{
		clock: clock,
		log:   baseLogger.With().Str("component", "event_loop").Logger(),
		wake:  make(chan struct{}, 1),
	}
}

// After runs task no sooner than delay from now. Negative delays count as zero.
func (l *Loop) After(delay time.Duration, task ports.Task) {
	if delay < 0 {
		delay = 0
	}

	l.mu.Lock()
	l.seq++
	heap.Push(&l.timers, &timer{
		deadline: l.clock.Now().Add(delay),
		seq:      l.seq,
		task:     task,
	})
	l.mu.Unlock()

	l.log.Debug().Dur("delay", delay).Msg("Timer scheduled")
	l.notify()
}

// NextTick runs task as soon as the current task returns, before any timer.
func (l *Loop) NextTick(task ports.Task) {
	l.mu.Lock()
	l.ticks = append(l.ticks, task)
	l.mu.Unlock()

	l.notify()
}

// Pending returns the number of queued ticks and timers.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.ticks) + l.timers.Len()
}

// Run executes tasks until ctx is cancelled, nothing is left to run,
// or a task returns an error.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info().Msg("Event loop started")

	for {
		if ctx.Err() != nil {
			l.log.Info().Int("dropped", l.Pending()).Msg("Event loop stopped (context done)")
			return nil
		}

		// 1. Ticks always go first
		if err := l.drainTicks(ctx); err != nil {
			return err
		}
		if ctx.Err() != nil {
			continue
		}

		// Anything queued from here on is seen by nextDue below,
		// so an old wake-up can be discarded.
		select {
		case <-l.wake:
		default:
		}

		// 2. One due timer per iteration, so ticks it queues run before the next timer
		task, wait, ok := l.nextDue()
		switch {
		case task != nil:
			if err := l.run(ctx, task); err != nil {
				return err
			}
			continue
		case !ok:
			l.log.Info().Msg("Event loop stopped (no pending work)")
			return nil
		case wait <= 0:
			// ticks arrived from another goroutine
			continue
		}

		// 3. Sleep until the earliest deadline or until new work arrives
		t := l.clock.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
		case <-l.wake:
			t.Stop()
		case <-t.Chan():
		}
	}
}

func (l *Loop) drainTicks(ctx context.Context) error {
	for {
		l.mu.Lock()
		if len(l.ticks) == 0 {
			l.mu.Unlock()
			return nil
		}
		task := l.ticks[0]
		l.ticks[0] = nil
		l.ticks = l.ticks[1:]
		l.mu.Unlock()

		if err := l.run(ctx, task); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// nextDue pops the earliest timer if its deadline has passed. Otherwise it
// reports how long until it does, or a zero wait if ticks are queued;
// ok is false when nothing is queued at all.
func (l *Loop) nextDue() (task ports.Task, wait time.Duration, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.ticks) > 0 {
		return nil, 0, true
	}
	if l.timers.Len() == 0 {
		return nil, 0, false
	}

	next := l.timers[0]
	now := l.clock.Now()
	if now.Before(next.deadline) {
		return nil, next.deadline.Sub(now), true
	}

	heap.Pop(&l.timers)
	return next.task, 0, true
}

func (l *Loop) run(ctx context.Context, task ports.Task) error {
	if err := task(ctx); err != nil {
		l.log.Error().Err(err).Msg("Scheduled task failed")
		return fmt.Errorf("%w: %w", ErrTaskFailed, err)
	}
	return nil
}

func (l *Loop) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
