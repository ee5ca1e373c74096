package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"slotcal/internal/event"
	"slotcal/internal/extract"
	"slotcal/internal/overlap"
	"slotcal/internal/store"
)

const (
	// DefaultDuration is the single global event duration. The store does
	// not record per-event durations; this one value applies uniformly to
	// every interval.
	DefaultDuration = time.Hour

	// DefaultProbeAttempts bounds the alternative-slot search.
	DefaultProbeAttempts = 4
)

// Scheduler owns the calendar store and turns free-text requests into
// terminal outcomes. See the package documentation for the state machine
// and the critical-section contract.
type Scheduler struct {
	mu        sync.Mutex
	store     *store.Store
	extractor extract.Extractor
	tokens    TokenGenerator
	duration  time.Duration
	attempts  int
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDuration overrides the global event duration.
func WithDuration(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.duration = d
		}
	}
}

// WithProbeAttempts overrides how many hour-aligned slots the alternative
// search tries.
func WithProbeAttempts(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.attempts = n
		}
	}
}

// WithTokenGenerator overrides the request token generator.
// Tests use FixedGenerator for deterministic transcripts.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(s *Scheduler) {
		if g != nil {
			s.tokens = g
		}
	}
}

// New creates a Scheduler owning the given store and consuming the given
// extractor.
func New(st *store.Store, ex extract.Extractor, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:     st,
		extractor: ex,
		tokens:    UUIDv7Generator{},
		duration:  DefaultDuration,
		attempts:  DefaultProbeAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Duration returns the global event duration.
func (s *Scheduler) Duration() time.Duration { return s.duration }

// Schedule processes one free-text request to completion.
//
// The returned Outcome is always one of the four terminal kinds; the error
// return is reserved for store I/O faults. Extraction failures resolve to
// KindParseFailure, collisions to the conflict kinds - neither is an error.
//
// On every outcome except KindScheduled the store is unchanged from before
// the call.
func (s *Scheduler) Schedule(ctx context.Context, text string, allowPlan bool) (Outcome, error) {
	token := s.tokens.Generate()
	slog.Debug("schedule request received", "request", token, "allow_plan", allowPlan)

	// Extraction runs outside the critical section: it is the only
	// long-running external call, and its failure must not block or touch
	// the store.
	ev, err := s.extractor.Extract(ctx, text)
	if err != nil {
		slog.Warn("extraction rejected request", "request", token, "error", err)
		return Outcome{Kind: KindParseFailure, Request: token, Err: err}, nil
	}

	// Conflict scan and insert form one critical section. Releasing the
	// lock between them would reintroduce the check-then-act race.
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.All(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("scan calendar: %w", err)
	}

	if blocking, conflicted := s.firstConflict(existing, ev.Start()); conflicted {
		slog.Info("slot conflict detected",
			"request", token,
			"requested_start", ev.Start().Format(event.TimeLayout),
			"blocking_event", blocking.ID(),
		)
		return s.resolveConflict(token, existing, ev, allowPlan), nil
	}

	if err := s.store.Insert(ctx, ev); err != nil {
		return Outcome{}, fmt.Errorf("insert event: %w", err)
	}

	slog.Info("event scheduled",
		"request", token,
		"id", ev.ID(),
		"name", ev.Name(),
		"start", ev.Start().Format(event.TimeLayout),
	)

	return Outcome{Kind: KindScheduled, Request: token, Event: ev}, nil
}

// resolveConflict turns a detected collision into its terminal outcome.
// Caller holds the mutex; existing is the scan the conflict was found in,
// reused so the probe sees the exact same calendar state.
func (s *Scheduler) resolveConflict(token string, existing []event.Event, ev event.Event, allowPlan bool) Outcome {
	if !allowPlan {
		slog.Info("conflict unresolved: planning disabled", "request", token)
		return Outcome{
			Kind:           KindConflictUnresolved,
			Request:        token,
			RequestedStart: ev.Start(),
		}
	}

	candidate, found := s.suggestAlternative(existing, ev)
	if !found {
		slog.Info("conflict unresolved: no free slot within probe bound",
			"request", token,
			"attempts", s.attempts,
		)
		return Outcome{
			Kind:           KindConflictUnresolved,
			Request:        token,
			RequestedStart: ev.Start(),
		}
	}

	slog.Info("alternative slot suggested",
		"request", token,
		"requested_start", ev.Start().Format(event.TimeLayout),
		"suggested_start", candidate.Start().Format(event.TimeLayout),
	)

	// Reported only - the candidate is never inserted. Re-requesting at
	// the suggested time is the caller's decision.
	return Outcome{
		Kind:           KindConflictSuggested,
		Request:        token,
		RequestedStart: ev.Start(),
		SuggestedStart: candidate.Start(),
	}
}

// firstConflict scans existing events for one whose interval overlaps a
// candidate interval starting at start. All intervals use the single
// global duration. O(len(existing)) per check.
func (s *Scheduler) firstConflict(existing []event.Event, start time.Time) (event.Event, bool) {
	end := start.Add(s.duration)
	for _, ev := range existing {
		if overlap.Overlaps(start, end, ev.Start(), ev.Start().Add(s.duration)) {
			return ev, true
		}
	}
	return event.Event{}, false
}

// Events returns the calendar sorted ascending by start time, ties broken
// by insertion order. Read-only.
func (s *Scheduler) Events(ctx context.Context) ([]event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ListSorted(ctx)
}
