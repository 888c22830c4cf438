package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

// SyncOrchestrator runs sync cycles. Both the manual commands and the
// recurring timer drive the same orchestrator, differing only in the
// options they pass.
type SyncOrchestrator interface {
	// RunCycle executes one complete cycle:
	// gate -> fetch -> import -> advance -> re-arm.
	//
	// The returned outcome describes how the cycle ended. RunCycle never
	// returns an error that would prevent re-arming; failures are folded
	// into the outcome.
	RunCycle(ctx context.Context, opts domain.SyncOptions) domain.Outcome

	// LastSyncedAt reports the current cursor value.
	// A zero time means the cursor is absent (never synced).
	LastSyncedAt(ctx context.Context) (time.Time, error)
}

// Rearmer re-arms the recurring sync timer. The orchestrator calls it
// unconditionally at the end of every cycle; any pending timer is
// cancelled first so at most one timer is ever pending.
type Rearmer interface {
	// Reschedule cancels any pending timer and schedules the next
	// automatic cycle after the fixed interval.
	Reschedule()
}
