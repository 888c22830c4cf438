package domain

import "time"

// CycleResult records the outcome of one sync cycle for the history log.
type CycleResult struct {
	// ID is the unique identifier for this cycle run.
	ID string

	// Trigger records what started the cycle.
	Trigger CycleTrigger

	// StartedAt is when the cycle started.
	StartedAt time.Time

	// EndedAt is when the cycle completed.
	EndedAt time.Time

	// Outcome tags how the cycle ended.
	Outcome OutcomeKind

	// Error contains the failure message, if any.
	Error string

	// BooksFetched is the number of books in the fetched window.
	BooksFetched int

	// HighlightsFetched is the number of highlights in the fetched window.
	HighlightsFetched int
}
