package driving

import "context"

// Scheduler manages the recurring sync cycle.
type Scheduler interface {
	// Start arms the first cycle per the startup policy and blocks
	// until the context is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop cancels any pending timer and waits for an in-flight
	// cycle to finish.
	Stop() error

	// Reschedule cancels any pending timer and arms a new one after
	// the fixed interval. Safe to call from any goroutine.
	Reschedule()
}
