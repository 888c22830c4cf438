package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driving"
	"github.com/custodia-labs/marginalia-cli/internal/logger"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.SyncOrchestrator = (*SyncOrchestrator)(nil)

// historyRetention is how many cycle results are kept.
const historyRetention = 100

// User-visible messages.
const (
	msgNoAPIKey     = "No API key configured. Set one with 'marginalia settings key'."
	msgInvalidKey   = "The export API rejected your API key. Check 'marginalia settings key'."
	msgSyncFailed   = "Highlight sync failed. Will retry at the next interval."
	msgNothingNew   = "Nothing new to import."
	msgFinished     = "Finished importing highlights."
	msgImportingFmt = "Importing %d highlights from %d books..."
)

// SyncOrchestrator runs the sync cycle state machine:
// Idle -> Gating -> Fetching -> Importing -> Advancing -> Idle.
// Failure at Gating or Fetching short-circuits back to Idle without
// touching the cursor; the re-arm step always runs.
type SyncOrchestrator struct {
	gate     *CredentialGate
	cursor   *CursorStore
	exporter driven.ExportClient
	importer driven.RecordImporter
	notifier driven.Notifier
	history  driven.CycleHistoryStore
	clock    Clock

	mu    sync.RWMutex
	rearm driving.Rearmer
}

// NewSyncOrchestrator creates a sync orchestrator.
// The history store is optional - if nil, cycles are not recorded.
// A nil clock defaults to the system clock.
func NewSyncOrchestrator(
	gate *CredentialGate,
	cursor *CursorStore,
	exporter driven.ExportClient,
	importer driven.RecordImporter,
	notifier driven.Notifier,
	history driven.CycleHistoryStore,
	clock Clock,
) *SyncOrchestrator {
	if clock == nil {
		clock = SystemClock()
	}
	return &SyncOrchestrator{
		gate:     gate,
		cursor:   cursor,
		exporter: exporter,
		importer: importer,
		notifier: notifier,
		history:  history,
		clock:    clock,
	}
}

// SetRearmer wires the scheduler in after construction. The orchestrator
// and scheduler reference each other, so one side is set late.
func (o *SyncOrchestrator) SetRearmer(r driving.Rearmer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rearm = r
}

// RunCycle executes one complete cycle. The deferred block is the
// guaranteed-execution scope: whatever branch is taken - including a
// panic anywhere in the cycle body - the result is recorded and the
// timer is re-armed.
func (o *SyncOrchestrator) RunCycle(ctx context.Context, opts domain.SyncOptions) (outcome domain.Outcome) {
	started := o.clock.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Sync cycle panicked: %v", r)
			o.toast(msgSyncFailed)
			outcome = domain.Failure(fmt.Sprintf("unexpected error: %v", r))
		}
		o.recordResult(ctx, opts, started, outcome)

		o.mu.RLock()
		rearm := o.rearm
		o.mu.RUnlock()
		if rearm != nil {
			rearm.Reschedule()
		}
	}()

	outcome = o.runCycle(ctx, opts)
	return outcome
}

// LastSyncedAt reports the current cursor value.
func (o *SyncOrchestrator) LastSyncedAt(ctx context.Context) (time.Time, error) {
	t, _, err := o.cursor.Read(ctx)
	return t, err
}

// runCycle is the cycle body: gate, fetch, import, advance.
func (o *SyncOrchestrator) runCycle(ctx context.Context, opts domain.SyncOptions) domain.Outcome {
	// Gating. Absence is a short-circuit: no fetch, no cursor I/O.
	apiKey, ok := o.gate.APIKey()
	if !ok {
		o.toast(msgNoAPIKey)
		return domain.Failure(domain.ErrNoCredential.Error())
	}

	// Resolve the fetch window. IgnoreLastSync or an absent cursor
	// requests the full history.
	var since *time.Time
	if !opts.IgnoreLastSync {
		t, present, err := o.cursor.Read(ctx)
		if err != nil {
			logger.Warn("Cursor read failed, falling back to full sync: %v", err)
		} else if present {
			since = &t
		}
	}

	// Fetching.
	outcome := o.fetchOutcome(ctx, apiKey, since)
	switch outcome.Kind {
	case domain.OutcomeAuthFailure:
		o.toast(msgInvalidKey)
		return outcome

	case domain.OutcomeFailure:
		logger.Warn("Export fetch failed: %s", outcome.Message)
		o.toast(msgSyncFailed)
		return outcome

	case domain.OutcomeSuccess:
		// Fall through to importing.
	}

	// Importing. An empty window still advances the cursor - a
	// successful empty fetch means "caught up".
	if len(outcome.Books) == 0 {
		if opts.Notify {
			o.toast(msgNothingNew)
		}
	} else {
		if opts.Notify {
			o.toast(fmt.Sprintf(msgImportingFmt, domain.CountHighlights(outcome.Books), len(outcome.Books)))
		}
		if err := o.importer.ImportRecords(ctx, outcome.Books); err != nil {
			logger.Warn("Import failed: %v", err)
			o.toast(msgSyncFailed)
			return domain.Failure(fmt.Sprintf("import: %v", err))
		}
		if opts.Notify {
			o.toast(msgFinished)
		}
	}

	// Advancing. The cursor moves to the current wall-clock time, not
	// the last record's timestamp: "as-of-now, caught up".
	if err := o.cursor.Write(ctx, o.clock.Now()); err != nil {
		logger.Warn("Cursor advance failed: %v", err)
		o.toast(msgSyncFailed)
		return domain.Failure(fmt.Sprintf("advance cursor: %v", err))
	}

	logger.Info("Sync complete: %d books, %d highlights",
		len(outcome.Books), domain.CountHighlights(outcome.Books))
	return outcome
}

// fetchOutcome invokes the export client and classifies the result.
// Auth rejection maps to authFailure; everything else collapses into
// one failure variant so the retry policy stays uniform.
func (o *SyncOrchestrator) fetchOutcome(ctx context.Context, apiKey string, since *time.Time) domain.Outcome {
	books, err := o.exporter.FetchExports(ctx, apiKey, since)
	if err != nil {
		if errors.Is(err, domain.ErrAuthInvalid) {
			return domain.AuthFailure()
		}
		return domain.Failure(err.Error())
	}
	return domain.Success(books)
}

// toast emits a fire-and-forget user notification.
func (o *SyncOrchestrator) toast(message string) {
	if o.notifier != nil {
		o.notifier.Toast(message)
	}
}

// recordResult logs the cycle to the history store, best effort.
func (o *SyncOrchestrator) recordResult(
	ctx context.Context,
	opts domain.SyncOptions,
	started time.Time,
	outcome domain.Outcome,
) {
	if o.history == nil {
		return
	}

	result := &domain.CycleResult{
		ID:                uuid.NewString(),
		Trigger:           opts.Trigger,
		StartedAt:         started,
		EndedAt:           o.clock.Now(),
		Outcome:           outcome.Kind,
		Error:             outcome.Message,
		BooksFetched:      len(outcome.Books),
		HighlightsFetched: domain.CountHighlights(outcome.Books),
	}

	if err := o.history.RecordResult(ctx, result); err != nil {
		logger.Warn("Failed to record cycle result: %v", err)
		return
	}
	if err := o.history.PruneHistory(ctx, historyRetention); err != nil {
		logger.Warn("Failed to prune cycle history: %v", err)
	}
}
