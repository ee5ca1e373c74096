package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotcal/internal/extract"
)

func runListCmd(t *testing.T, dbPath, format string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewListCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--db", dbPath})

	err := cmd.Execute()
	return buf.String(), err
}

func TestList_EmptyCalendar(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cal.db")

	out, err := runListCmd(t, dbPath, "text")
	require.NoError(t, err)
	assert.Equal(t, "No events scheduled.\n", out)
}

func TestList_SortedByStartTime(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cal.db")

	// Seed through the schedule command, deliberately out of time order.
	scripted := extract.NewScripted().
		QueueEvent(testEvent(t, "dinner", "2025-09-20 20:00", "Emma")).
		QueueEvent(testEvent(t, "science fair", "2025-09-19 17:00", "Alice", "Bob"))
	for _, text := range []string{"dinner", "science fair"} {
		_, err := runScheduleCmd(t, dbPath, scripted, text)
		require.NoError(t, err)
	}

	out, err := runListCmd(t, dbPath, "text")
	require.NoError(t, err)
	assert.Equal(t,
		"- science fair at 2025-09-19 17:00 with Alice, Bob\n"+
			"- dinner at 2025-09-20 20:00 with Emma\n",
		out)
}

func TestList_JSONOutput(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cal.db")

	scripted := extract.NewScripted().
		QueueEvent(testEvent(t, "dinner", "2025-09-20 20:00", "Emma"))
	_, err := runScheduleCmd(t, dbPath, scripted, "dinner")
	require.NoError(t, err)

	out, err := runListCmd(t, dbPath, "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"status":"ok"`)
	assert.Contains(t, out, `"name":"dinner"`)
	assert.Contains(t, out, `"participants":["Emma"]`)
}

func TestList_JSONEmptyCalendarIsArray(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cal.db")

	out, err := runListCmd(t, dbPath, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":[]}`, out)
}
