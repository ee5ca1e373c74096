package extract

import (
	"encoding/json"
	"strings"
	"time"

	"slotcal/internal/event"
)

// payload is the JSON contract the model is instructed to reply with.
type payload struct {
	Name         string   `json:"name"`
	StartTime    string   `json:"start_time"`
	Participants []string `json:"participants"`
}

// Parse validates raw model output and constructs an event from it.
//
// All-or-nothing: the output must be a JSON object with a non-empty name
// and a start_time in "YYYY-MM-DD HH:MM" form, or a *ParseError is
// returned and no event is built. Participants pass through unvalidated.
func Parse(raw string) (event.Event, error) {
	var p payload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &p); err != nil {
		return event.Event{}, &ParseError{Reason: "model output is not valid JSON", Raw: raw, Err: err}
	}

	if p.StartTime == "" {
		return event.Event{}, &ParseError{Reason: "missing start_time", Raw: raw}
	}
	start, err := time.Parse(event.TimeLayout, p.StartTime)
	if err != nil {
		return event.Event{}, &ParseError{Reason: "unparsable start_time", Raw: raw, Err: err}
	}

	ev, err := event.New(p.Name, start, p.Participants)
	if err != nil {
		return event.Event{}, &ParseError{Reason: "invalid event fields", Raw: raw, Err: err}
	}

	return ev, nil
}
