package store

import (
	"context"
	"encoding/json"
	"fmt"

	"slotcal/internal/event"
)

// Insert appends an event to the calendar unconditionally.
//
// The store performs no overlap validation - callers must have already
// confirmed non-overlap against the current contents. The scheduler is the
// only writer and holds its critical section across scan and insert.
//
// Uses ON CONFLICT(id) DO NOTHING so re-inserting the same event is
// idempotent; other constraint violations still return errors.
func (s *Store) Insert(ctx context.Context, ev event.Event) error {
	parts := ev.Participants()
	if parts == nil {
		parts = []string{}
	}
	partsJSON, err := json.Marshal(parts)
	if err != nil {
		return fmt.Errorf("insert event: marshal participants: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO events (id, name, start_time, participants, seq)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		ev.ID(),
		ev.Name(),
		ev.Start().Format(event.TimeLayout),
		string(partsJSON),
		s.seq.Add(1),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}
