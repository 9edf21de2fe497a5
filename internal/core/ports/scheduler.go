package ports

import (
	"context"
	"time"
)

// Task is a unit of deferred work run by a Scheduler.
type Task func(ctx context.Context) error

// Scheduler is the abstract interface for deferring work.
type Scheduler interface {
	// After runs task no sooner than delay from now.
	After(delay time.Duration, task Task)

	// NextTick runs task once the current call stack unwinds,
	// ahead of any delayed task.
	NextTick(task Task)
}
