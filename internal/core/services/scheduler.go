package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driving"
	"github.com/custodia-labs/marginalia-cli/internal/logger"
)

// Ensure Scheduler implements the interface.
var _ driving.Scheduler = (*Scheduler)(nil)

// Scheduler manages the single recurring sync cycle.
//
// The pending timer is an explicit field owned by the scheduler, and
// Reschedule is its only mutator: it cancels any existing handle before
// creating a new one, so at most one timer is pending at any time. The
// orchestrator calls Reschedule unconditionally at the end of every
// cycle, which keeps cycles interval-spaced regardless of how they end.
type Scheduler struct {
	config domain.SyncConfig
	orch   driving.SyncOrchestrator
	clock  Clock

	mu      sync.Mutex
	running bool
	timer   Timer
	stopCh  chan struct{}
	ctx     context.Context
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler. A nil clock defaults to the system
// clock.
func NewScheduler(config domain.SyncConfig, orch driving.SyncOrchestrator, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		config: config,
		orch:   orch,
		clock:  clock,
	}
}

// Start arms the first cycle and blocks until the context is cancelled
// or Stop is called.
//
// Startup policy: an absent or stale cursor (older than the interval)
// runs a cycle immediately and silently; a recent cursor waits out the
// remainder of the interval, so cycles land on approximately
// interval-spaced wall-clock boundaries across restarts.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil // Already running
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.ctx = ctx
	s.mu.Unlock()

	if s.config.Enabled {
		last, err := s.orch.LastSyncedAt(ctx)
		if err != nil {
			logger.Warn("Reading cursor at startup failed, syncing immediately: %v", err)
		}

		delay := domain.InitialDelay(last, s.config.Interval, s.clock.Now())
		trigger := domain.TriggerScheduled
		if delay == 0 {
			trigger = domain.TriggerStartup
		}
		logger.Info("First sync cycle in %s", delay)
		s.arm(delay, trigger)
	} else {
		logger.Info("Automatic sync is disabled; no cycles will be scheduled")
	}

	select {
	case <-ctx.Done():
		_ = s.Stop()
		return ctx.Err()
	case <-s.stopCh:
		return nil
	}
}

// Stop cancels the pending timer and waits for an in-flight cycle.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	// Wait for a running cycle to complete
	s.wg.Wait()

	return nil
}

// Reschedule cancels any pending timer and arms a new one after the
// fixed interval.
func (s *Scheduler) Reschedule() {
	s.arm(s.config.Interval, domain.TriggerScheduled)
}

// arm replaces the pending timer. The cancel-then-create discipline is
// what guarantees no two cycles are ever scheduled concurrently.
func (s *Scheduler) arm(delay time.Duration, trigger domain.CycleTrigger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || !s.config.Enabled {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.clock.AfterFunc(delay, func() {
		s.runCycle(trigger)
	})
}

// runCycle executes one automatic cycle. Re-arming happens inside the
// orchestrator's guaranteed-execution block, not here.
func (s *Scheduler) runCycle(trigger domain.CycleTrigger) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	ctx := s.ctx
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	// The startup catch-up cycle is always silent; recurring cycles
	// toast only when the user has opted in. Failures surface either way.
	opts := domain.SyncOptions{
		Notify:  s.config.Notify && trigger != domain.TriggerStartup,
		Trigger: trigger,
	}
	s.orch.RunCycle(ctx, opts)
}
