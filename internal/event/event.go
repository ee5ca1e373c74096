// Package event provides the calendar event value type.
//
// This package contains the foundational data type only. All other internal
// packages import event; event imports nothing internal. This keeps the
// type layer free of circular dependencies.
//
// Key design constraints:
//   - An Event can only be built through New, Restore, or WithStart, all of
//     which validate. Holding an Event means validation already passed.
//   - Events are immutable. Derivations (WithStart) produce new values.
//   - Start times are naive local time. No timezone normalization happens
//     anywhere in the system.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the wire and display layout for event start times.
// The extraction gateway emits this layout and listings render it.
const TimeLayout = "2006-01-02 15:04"

// Validation errors returned by New and Restore.
var (
	ErrEmptyName    = errors.New("event name is empty")
	ErrMissingStart = errors.New("event start time is missing")
)

// Event is an immutable scheduled activity: a name, an absolute start time,
// and an ordered list of participant identifiers.
//
// Participants are pass-through from extraction - duplicates and empty
// entries are deliberately not validated here.
type Event struct {
	id           string
	name         string
	start        time.Time
	participants []string
}

// New validates and constructs an Event with a fresh UUIDv7 identifier.
//
// Validation is all-or-nothing: a non-empty name and a fully-specified
// start time are required, otherwise no Event is produced.
func New(name string, start time.Time, participants []string) (Event, error) {
	return build(uuid.Must(uuid.NewV7()).String(), name, start, participants)
}

// Restore rebuilds an Event from stored fields, keeping its original
// identifier. Used by the store when scanning rows; the same validation
// rules apply.
func Restore(id, name string, start time.Time, participants []string) (Event, error) {
	if id == "" {
		return Event{}, errors.New("event id is empty")
	}
	return build(id, name, start, participants)
}

func build(id, name string, start time.Time, participants []string) (Event, error) {
	if strings.TrimSpace(name) == "" {
		return Event{}, ErrEmptyName
	}
	if start.IsZero() {
		return Event{}, ErrMissingStart
	}

	// Copy participants to prevent external mutation of the stored slice.
	var parts []string
	if len(participants) > 0 {
		parts = make([]string, len(participants))
		copy(parts, participants)
	}

	return Event{
		id:           id,
		name:         name,
		start:        start,
		participants: parts,
	}, nil
}

// ID returns the event's unique identifier.
func (e Event) ID() string { return e.id }

// Name returns the event's label.
func (e Event) Name() string { return e.name }

// Start returns the event's start time.
func (e Event) Start() time.Time { return e.start }

// Participants returns a copy of the participant list, preserving order.
func (e Event) Participants() []string {
	if len(e.participants) == 0 {
		return nil
	}
	parts := make([]string, len(e.participants))
	copy(parts, e.participants)
	return parts
}

// WithStart derives a new Event at a different start time, keeping the
// name and participants. The derived event gets its own identifier.
//
// Used by the alternative-slot search to build probe candidates.
func (e Event) WithStart(start time.Time) Event {
	derived, err := New(e.name, start, e.participants)
	if err != nil {
		// e already passed validation and start times are caller-computed
		// offsets of a valid time, so this is unreachable for any Event
		// built through New or Restore.
		panic(fmt.Sprintf("derive event: %v", err))
	}
	return derived
}

// String renders the event in listing form:
//
//	science fair at 2025-09-19 17:00 with Alice, Bob
func (e Event) String() string {
	if len(e.participants) == 0 {
		return fmt.Sprintf("%s at %s", e.name, e.start.Format(TimeLayout))
	}
	return fmt.Sprintf("%s at %s with %s", e.name, e.start.Format(TimeLayout), strings.Join(e.participants, ", "))
}
