package harness

import (
	"context"
	"fmt"
	"strings"
	"time"

	"slotcal/internal/event"
	"slotcal/internal/extract"
	"slotcal/internal/schedule"
	"slotcal/internal/store"
)

// Result captures one scenario execution.
type Result struct {
	// Pass is true when every expect clause held.
	Pass bool

	// Errors lists expect violations, one message per failure.
	Errors []string

	// Transcript is the deterministic line-oriented record of the run,
	// used for golden comparison.
	Transcript string
}

// Run executes a scenario and returns its result.
//
// Each run uses a fresh in-memory store, a scripted extractor built from
// the scenario's steps, and fixed request tokens, so identical scenarios
// always produce identical transcripts.
//
// The returned error reports infrastructure faults (store I/O, invalid
// seed events); expect violations land in Result.Errors instead.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("create in-memory store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()

	// Seed events bypass the scheduler: scenarios state their starting
	// calendar directly.
	for _, seed := range scenario.Seed {
		ev, err := buildEvent(seed.Name, seed.StartTime, seed.Participants)
		if err != nil {
			return nil, fmt.Errorf("seed event %q: %w", seed.Name, err)
		}
		if err := st.Insert(ctx, ev); err != nil {
			return nil, fmt.Errorf("insert seed event %q: %w", seed.Name, err)
		}
	}

	scripted, err := scriptSteps(scenario.Steps)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, len(scenario.Steps))
	for i := range tokens {
		tokens[i] = fmt.Sprintf("req-%03d", i+1)
	}

	scheduler := schedule.New(st, scripted,
		schedule.WithDuration(scenario.EventDuration()),
		schedule.WithTokenGenerator(schedule.NewFixedGenerator(tokens...)),
	)

	result := &Result{Pass: true}
	lines := []string{"scenario: " + scenario.Name}

	for i, step := range scenario.Steps {
		out, err := scheduler.Schedule(ctx, step.Text, !step.NoPlan)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}

		lines = append(lines, fmt.Sprintf("step %d: %s", i+1, describeOutcome(out)))
		checkExpect(ctx, scheduler, i+1, step.Expect, out, result)
	}

	events, err := scheduler.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("final listing: %w", err)
	}
	if len(events) == 0 {
		lines = append(lines, "calendar: empty")
	} else {
		lines = append(lines, "calendar:")
		for _, ev := range events {
			lines = append(lines, "- "+ev.String())
		}
	}

	result.Transcript = strings.Join(lines, "\n") + "\n"
	return result, nil
}

// scriptSteps builds the scripted extractor matching the step order.
func scriptSteps(steps []Step) (*extract.Scripted, error) {
	scripted := extract.NewScripted()
	for i, step := range steps {
		if step.Extract.Fail {
			scripted.QueueFailure("scripted extraction failure")
			continue
		}
		ev, err := buildEvent(step.Extract.Name, step.Extract.StartTime, step.Extract.Participants)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		scripted.QueueEvent(ev)
	}
	return scripted, nil
}

func buildEvent(name, start string, participants []string) (event.Event, error) {
	ts, err := time.Parse(event.TimeLayout, start)
	if err != nil {
		return event.Event{}, fmt.Errorf("parse start_time %q: %w", start, err)
	}
	return event.New(name, ts, participants)
}

// describeOutcome renders one outcome as a transcript line fragment.
// Request tokens and event IDs are deliberately excluded: the fixed token
// sequence carries no information and IDs are random.
func describeOutcome(out schedule.Outcome) string {
	switch out.Kind {
	case schedule.KindScheduled:
		return "scheduled " + out.Event.String()
	case schedule.KindConflictSuggested:
		return fmt.Sprintf("conflict at %s, suggested %s",
			out.RequestedStart.Format(event.TimeLayout),
			out.SuggestedStart.Format(event.TimeLayout))
	case schedule.KindConflictUnresolved:
		return fmt.Sprintf("conflict at %s, unresolved", out.RequestedStart.Format(event.TimeLayout))
	case schedule.KindParseFailure:
		return "parse failure"
	default:
		return fmt.Sprintf("unknown outcome %q", out.Kind)
	}
}

// checkExpect validates one step's expect clause, appending violations to
// the result.
func checkExpect(ctx context.Context, scheduler *schedule.Scheduler, stepNum int, expect *Expect, out schedule.Outcome, result *Result) {
	if expect == nil {
		return
	}

	fail := func(format string, args ...any) {
		result.Pass = false
		result.Errors = append(result.Errors, fmt.Sprintf("step %d: ", stepNum)+fmt.Sprintf(format, args...))
	}

	if expect.Outcome != "" && expect.Outcome != string(out.Kind) {
		fail("outcome = %s, want %s", out.Kind, expect.Outcome)
	}
	if expect.RequestedStart != "" {
		got := out.RequestedStart.Format(event.TimeLayout)
		if got != expect.RequestedStart {
			fail("requested_start = %s, want %s", got, expect.RequestedStart)
		}
	}
	if expect.SuggestedStart != "" {
		got := out.SuggestedStart.Format(event.TimeLayout)
		if got != expect.SuggestedStart {
			fail("suggested_start = %s, want %s", got, expect.SuggestedStart)
		}
	}
	if expect.CalendarSize != nil {
		events, err := scheduler.Events(ctx)
		if err != nil {
			fail("read calendar: %v", err)
			return
		}
		if len(events) != *expect.CalendarSize {
			fail("calendar size = %d, want %d", len(events), *expect.CalendarSize)
		}
	}
}
