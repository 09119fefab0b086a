package internal

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Clock abstracts wall-clock access so the scheduler can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the real wall clock.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// Scheduler drives the ledger's daily tick. It fires once immediately on
// Start and then once per interval (nominally every 24h). Serialization with
// user-triggered mutations happens inside the ledger itself.
type Scheduler struct {
	ledger   *Ledger
	clock    Clock
	interval time.Duration
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler over the given ledger. A nil logger
// discards log output.
func NewScheduler(ledger *Ledger, clock Clock, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		ledger:   ledger,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the tick loop in its own goroutine. It runs until the
// context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.runOnce()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("scheduler stopped")
				return
			case <-ticker.C:
				s.runOnce()
			}
		}
	}()
	s.logger.Info("scheduler started", "interval", s.interval)
}

// Wait blocks until the tick loop has exited.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runOnce() {
	now := s.clock.Now()
	charges := s.ledger.Tick(now)
	if len(charges) > 0 {
		s.logger.Info("materialized charges", "date", now.Format("2006-01-02"), "count", len(charges))
	}
}
