package domain

// SyncOptions configures a single sync cycle. Options are ephemeral:
// each caller (manual command, automatic timer) constructs them fresh,
// and they are never persisted.
type SyncOptions struct {
	// IgnoreLastSync forces a full resync, bypassing the cursor.
	IgnoreLastSync bool

	// Notify controls whether user-visible status messages are emitted
	// for unremarkable outcomes. Failures are always surfaced.
	Notify bool

	// Trigger records what started this cycle, for the history log.
	Trigger CycleTrigger
}

// CycleTrigger records what started a cycle, for the history log.
type CycleTrigger string

// Available cycle triggers.
const (
	// TriggerManual is a user-invoked sync command.
	TriggerManual CycleTrigger = "manual"

	// TriggerScheduled is the recurring timer.
	TriggerScheduled CycleTrigger = "scheduled"

	// TriggerStartup is the silent cycle run when the cursor is
	// absent or stale at initialisation.
	TriggerStartup CycleTrigger = "startup"
)
