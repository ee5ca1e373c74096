package schedule

import (
	"time"

	"slotcal/internal/event"
)

// probeStep is the fixed spacing between probe candidates. The search
// steps in whole hours regardless of the configured event duration.
const probeStep = time.Hour

// suggestAlternative searches forward from the rejected event's start time
// in fixed one-hour increments, bounded to s.attempts candidates, and
// returns the first candidate whose interval is free.
//
// This is a bounded linear probe, not an exhaustive free-slot search: it
// misses free slots beyond the bound and slots before the requested time.
// That is a deliberate simplicity/latency tradeoff.
//
// Each candidate keeps the original's name and participants, differing
// only in start time.
func (s *Scheduler) suggestAlternative(existing []event.Event, ev event.Event) (event.Event, bool) {
	for i := 1; i <= s.attempts; i++ {
		candidate := ev.WithStart(ev.Start().Add(time.Duration(i) * probeStep))
		if _, conflicted := s.firstConflict(existing, candidate.Start()); !conflicted {
			return candidate, true
		}
	}
	return event.Event{}, false
}
