package schedule

import (
	"time"

	"slotcal/internal/event"
)

// Kind identifies the terminal outcome of a schedule request.
type Kind string

const (
	// KindScheduled: the event was free and is now in the calendar.
	KindScheduled Kind = "scheduled"

	// KindConflictSuggested: the requested slot collides with an existing
	// booking and a free alternative was found. The alternative is reported
	// only - it is not inserted.
	KindConflictSuggested Kind = "conflict_suggested"

	// KindConflictUnresolved: the requested slot collides and no
	// alternative was found (or the search was disabled).
	KindConflictUnresolved Kind = "conflict_unresolved"

	// KindParseFailure: extraction could not produce a valid event.
	KindParseFailure Kind = "parse_failure"
)

// Outcome is the result of one schedule request.
//
// A conflict is a normal, expected outcome, not an error: structurally
// valid requests that collide resolve to one of the two conflict kinds.
type Outcome struct {
	// Kind is the terminal state of the request.
	Kind Kind

	// Request is the correlation token stamped on every log line of this
	// request.
	Request string

	// Event is the scheduled event. Set only for KindScheduled.
	Event event.Event

	// RequestedStart is the start time the request asked for. Set for the
	// conflict kinds.
	RequestedStart time.Time

	// SuggestedStart is the first free probe slot. Set only for
	// KindConflictSuggested.
	SuggestedStart time.Time

	// Err is the extraction failure. Set only for KindParseFailure.
	Err error
}
