package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotcal/internal/event"
)

func TestParse_Valid(t *testing.T) {
	ev, err := Parse(`{"name":"science fair","start_time":"2025-09-19 17:00","participants":["Alice","Bob"]}`)
	require.NoError(t, err)

	assert.Equal(t, "science fair", ev.Name())
	assert.Equal(t, "2025-09-19 17:00", ev.Start().Format(event.TimeLayout))
	assert.Equal(t, []string{"Alice", "Bob"}, ev.Participants())
}

func TestParse_SurroundingWhitespace(t *testing.T) {
	ev, err := Parse("\n  {\"name\":\"dinner\",\"start_time\":\"2025-09-20 20:00\",\"participants\":[\"Emma\"]}  \n")
	require.NoError(t, err)
	assert.Equal(t, "dinner", ev.Name())
}

func TestParse_NoParticipants(t *testing.T) {
	// Participants are pass-through; absence is fine.
	ev, err := Parse(`{"name":"focus block","start_time":"2025-09-19 08:00"}`)
	require.NoError(t, err)
	assert.Empty(t, ev.Participants())
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"non-JSON output", "Sure! Here's your event: science fair at 5pm"},
		{"empty output", ""},
		{"missing name", `{"start_time":"2025-09-19 17:00","participants":[]}`},
		{"missing start_time", `{"name":"science fair","participants":[]}`},
		{"partial timestamp", `{"name":"science fair","start_time":"2025-09-19","participants":[]}`},
		{"garbage timestamp", `{"name":"science fair","start_time":"next friday","participants":[]}`},
		{"wrong types", `{"name":42,"start_time":"2025-09-19 17:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "failure must be a *ParseError, got %T", err)
		})
	}
}

func TestParseError_PreservesRawOutput(t *testing.T) {
	raw := "not json at all"
	_, err := Parse(raw)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, raw, pe.Raw)
	assert.Contains(t, pe.Error(), "not valid JSON")
}
