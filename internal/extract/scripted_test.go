package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotcal/internal/event"
)

func TestScripted_ReturnsResultsInOrder(t *testing.T) {
	start, err := time.Parse(event.TimeLayout, "2025-09-19 17:00")
	require.NoError(t, err)
	ev, err := event.New("science fair", start, []string{"Alice"})
	require.NoError(t, err)

	s := NewScripted().
		QueueEvent(ev).
		QueueFailure("no event found")

	got, err := s.Extract(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, ev.ID(), got.ID())

	_, err = s.Extract(context.Background(), "anything else")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "no event found", pe.Reason)

	assert.Equal(t, 0, s.Remaining())
}

func TestScripted_PanicsWhenExhausted(t *testing.T) {
	s := NewScripted()
	assert.Panics(t, func() {
		_, _ = s.Extract(context.Background(), "text")
	})
}
