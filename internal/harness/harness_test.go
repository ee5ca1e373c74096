package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestRun_DemoFlow(t *testing.T) {
	scenario := &Scenario{
		Name: "inline_demo",
		Steps: []Step{
			{
				Text:    "Alice and Bob are going to a science fair on 2025-09-19 17:00.",
				Extract: ExtractReply{Name: "science fair", StartTime: "2025-09-19 17:00", Participants: []string{"Alice", "Bob"}},
				Expect:  &Expect{Outcome: "scheduled", CalendarSize: intPtr(1)},
			},
			{
				Text:    "Team meeting with Carol on 2025-09-19 17:30.",
				Extract: ExtractReply{Name: "team meeting", StartTime: "2025-09-19 17:30", Participants: []string{"Carol"}},
				Expect: &Expect{
					Outcome:        "conflict_suggested",
					RequestedStart: "2025-09-19 17:30",
					SuggestedStart: "2025-09-19 18:30",
					CalendarSize:   intPtr(1),
				},
			},
			{
				Text:    "Dinner with Emma on 2025-09-20 20:00.",
				Extract: ExtractReply{Name: "dinner", StartTime: "2025-09-20 20:00", Participants: []string{"Emma"}},
				Expect:  &Expect{Outcome: "scheduled", CalendarSize: intPtr(2)},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "violations: %v", result.Errors)
	assert.Empty(t, result.Errors)

	// Final calendar is sorted ascending by start time.
	assert.Contains(t, result.Transcript, "calendar:\n- science fair at 2025-09-19 17:00 with Alice, Bob\n- dinner at 2025-09-20 20:00 with Emma")
}

func TestRun_Deterministic(t *testing.T) {
	scenario := &Scenario{
		Name: "repeatable",
		Steps: []Step{
			{
				Text:    "Dinner with Emma on 2025-09-20 20:00.",
				Extract: ExtractReply{Name: "dinner", StartTime: "2025-09-20 20:00", Participants: []string{"Emma"}},
			},
		},
	}

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, first.Transcript, second.Transcript, "identical scenarios must produce identical transcripts")
}

func TestRun_ReportsExpectViolations(t *testing.T) {
	scenario := &Scenario{
		Name: "violating",
		Steps: []Step{
			{
				Text:    "Dinner with Emma on 2025-09-20 20:00.",
				Extract: ExtractReply{Name: "dinner", StartTime: "2025-09-20 20:00"},
				Expect:  &Expect{Outcome: "conflict_suggested"},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err, "a violated expect is a result, not an execution fault")
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "outcome = scheduled, want conflict_suggested")
}

func TestRun_SeedEventsVisibleToConflictScan(t *testing.T) {
	scenario := &Scenario{
		Name: "seeded",
		Seed: []SeedEvent{{Name: "standup", StartTime: "2025-09-19 09:00"}},
		Steps: []Step{
			{
				Text:    "Planning at 2025-09-19 09:30.",
				Extract: ExtractReply{Name: "planning", StartTime: "2025-09-19 09:30"},
				Expect:  &Expect{Outcome: "conflict_suggested", SuggestedStart: "2025-09-19 10:30"},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "violations: %v", result.Errors)
}

func TestRun_InvalidScenarioFails(t *testing.T) {
	_, err := Run(&Scenario{Name: ""})
	require.Error(t, err)
}

func TestRun_TranscriptShape(t *testing.T) {
	scenario := &Scenario{
		Name: "shape",
		Steps: []Step{
			{Text: "gibberish", Extract: ExtractReply{Fail: true}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(result.Transcript, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "scenario: shape", lines[0])
	assert.Equal(t, "step 1: parse failure", lines[1])
	assert.Equal(t, "calendar: empty", lines[2])
}
