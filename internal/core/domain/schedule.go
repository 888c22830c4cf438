package domain

import "time"

// DefaultSyncInterval is the fixed cadence between sync cycles.
const DefaultSyncInterval = 30 * time.Minute

// SyncConfig holds scheduler configuration.
type SyncConfig struct {
	// Enabled is the master switch for automatic syncing.
	Enabled bool

	// Interval defines how often a cycle runs.
	Interval time.Duration

	// Notify controls whether automatic cycles emit progress toasts.
	Notify bool
}

// DefaultSyncConfig returns sensible defaults for the scheduler.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		Enabled:  true,
		Interval: DefaultSyncInterval,
	}
}

// InitialDelay computes how long to wait before the first cycle after
// startup. A zero cursor, or one older than the interval, runs
// immediately. Otherwise the remainder of the interval is waited out,
// so cycles land on approximately interval-spaced wall-clock boundaries
// even across restarts.
func InitialDelay(cursor time.Time, interval time.Duration, now time.Time) time.Duration {
	if cursor.IsZero() {
		return 0
	}
	age := now.Sub(cursor)
	if age >= interval {
		return 0
	}
	return interval - age
}
