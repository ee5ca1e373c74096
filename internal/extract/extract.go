package extract

import (
	"context"
	"fmt"

	"slotcal/internal/event"
)

// Extractor turns free-form text into a validated event.
// Implemented by Client (production) and Scripted (tests).
//
// An error return is the failure signal: no partially-valid record
// accompanies it. Implementations must not mutate any shared state.
type Extractor interface {
	Extract(ctx context.Context, text string) (event.Event, error)
}

// ParseError reports that model output could not be turned into a valid
// event: malformed JSON, a missing field, or an unparsable timestamp.
type ParseError struct {
	Reason string // human-readable description
	Raw    string // the raw model output, for diagnostics
	Err    error  // underlying error, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extract: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
