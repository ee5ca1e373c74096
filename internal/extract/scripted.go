package extract

import (
	"context"
	"sync"

	"slotcal/internal/event"
)

// Scripted returns predetermined extraction results for testing.
//
// This enables deterministic scheduler and harness runs without a live
// model. Tests queue a known sequence of results and verify exact outcomes.
//
// Thread-safety: Scripted is safe for concurrent use via internal mutex.
type Scripted struct {
	mu      sync.Mutex
	results []scriptedResult
	idx     int
}

type scriptedResult struct {
	ev  event.Event
	err error
}

// NewScripted creates an empty scripted extractor. Queue results with
// QueueEvent and QueueFailure in the order Extract will be called.
func NewScripted() *Scripted {
	return &Scripted{}
}

// QueueEvent scripts a successful extraction returning ev.
func (s *Scripted) QueueEvent(ev event.Event) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, scriptedResult{ev: ev})
	return s
}

// QueueFailure scripts a failed extraction returning a ParseError with the
// given reason.
func (s *Scripted) QueueFailure(reason string) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, scriptedResult{err: &ParseError{Reason: reason}})
	return s
}

// Extract returns the next scripted result. The text argument is ignored -
// scripting is positional, matching the call order of the test flow.
//
// Panics if the script is exhausted. This is a fail-fast approach: a test
// consuming more results than it scripted is itself broken.
func (s *Scripted) Extract(_ context.Context, _ string) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx >= len(s.results) {
		panic("extract: scripted results exhausted")
	}

	r := s.results[s.idx]
	s.idx++
	return r.ev, r.err
}

// Remaining reports how many scripted results are still unconsumed.
// Tests can assert it reaches zero.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results) - s.idx
}
