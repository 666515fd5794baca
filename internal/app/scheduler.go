package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lunaracodes/gagwatch/internal/clock"
	"github.com/lunaracodes/gagwatch/internal/state"
)

// DefaultGranularity is the check cadence in minutes.
const DefaultGranularity = 5

const countdownInterval = time.Second

// UntilNextBoundary returns the time from now until the next wall-clock
// multiple of granularity minutes within the hour. Minute 60 is minute 0 of
// the next hour. granularity outside 1..60 falls back to the default. The
// result is always positive.
func UntilNextBoundary(now time.Time, granularity int) time.Duration {
	if granularity <= 0 || granularity > 60 {
		granularity = DefaultGranularity
	}
	next := (now.Minute()/granularity + 1) * granularity
	if next > 60 {
		next = 60
	}
	// Work from the wall-clock fields; rebuilding the hour with time.Date
	// picks the first of two identical local hours after a DST fall-back.
	return time.Duration(next-now.Minute())*time.Minute -
		time.Duration(now.Second())*time.Second -
		time.Duration(now.Nanosecond())
}

// SecondsUntilNextBoundary is UntilNextBoundary in whole seconds.
func SecondsUntilNextBoundary(now time.Time, granularity int) int {
	return int(UntilNextBoundary(now, granularity) / time.Second)
}

// Scheduler runs the countdown and polling loops.
type Scheduler struct {
	checker     *Checker
	store       *state.Store
	clock       clock.Clock
	granularity int
	log         zerolog.Logger

	wg sync.WaitGroup
}

// NewScheduler returns a Scheduler. A nil clock uses the wall clock.
func NewScheduler(checker *Checker, store *state.Store, clk clock.Clock, granularity int, log zerolog.Logger) *Scheduler {
	if clk == nil {
		clk = clock.Real()
	}
	if granularity <= 0 || granularity > 60 {
		granularity = DefaultGranularity
	}
	return &Scheduler{
		checker:     checker,
		store:       store,
		clock:       clk,
		granularity: granularity,
		log:         log.With().Str("component", "scheduler").Logger(),
	}
}

// Start launches both loops. They stop when ctx is cancelled; Wait blocks
// until they have returned.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		s.countdown(ctx)
	}()
	go func() {
		defer s.wg.Done()
		s.poll(ctx)
	}()
}

// Wait blocks until both loops have exited.
func (s *Scheduler) Wait() { s.wg.Wait() }

func (s *Scheduler) countdown(ctx context.Context) {
	ticker := s.clock.NewTicker(countdownInterval)
	defer ticker.Stop()

	for {
		s.store.SetCountdown(time.Duration(SecondsUntilNextBoundary(s.clock.Now(), s.granularity)) * time.Second)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) poll(ctx context.Context) {
	fired := false
	for {
		now := s.clock.Now()
		wait := UntilNextBoundary(now, s.granularity)
		if fired && wait < time.Second {
			// Woke a hair before the boundary; skip to the one after.
			wait += UntilNextBoundary(now.Add(wait), s.granularity)
		}
		if wait <= 0 {
			wait = time.Duration(s.granularity) * time.Minute
		}
		s.log.Debug().Dur("wait", wait).Msg("next check scheduled")
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(wait):
		}
		if ctx.Err() != nil {
			return
		}
		fired = true
		result := s.checker.CheckAll(ctx)
		s.log.Debug().Int("matched", len(result.Matched())).Msg("scheduled check finished")
	}
}
