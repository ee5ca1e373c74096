package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"slotcal/internal/event"
)

// All returns every event in insertion order. This is the raw scan the
// scheduler iterates for its conflict check.
//
// Returns an empty slice (not nil) if the calendar is empty.
func (s *Store) All(ctx context.Context) ([]event.Event, error) {
	return s.query(ctx, `
		SELECT id, name, start_time, participants
		FROM events
		ORDER BY seq ASC
	`)
}

// ListSorted returns every event ordered ascending by start time, with
// start-time ties broken by original insertion order. Side-effect-free:
// calling it twice without an intervening insert yields identical results.
func (s *Store) ListSorted(ctx context.Context) ([]event.Event, error) {
	return s.query(ctx, `
		SELECT id, name, start_time, participants
		FROM events
		ORDER BY start_time ASC, seq ASC
	`)
}

// Count returns the number of stored events.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

func (s *Store) query(ctx context.Context, q string) ([]event.Event, error) {
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []event.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

func scanEvent(rows *sql.Rows) (event.Event, error) {
	var id, name, startRaw, partsRaw string
	if err := rows.Scan(&id, &name, &startRaw, &partsRaw); err != nil {
		return event.Event{}, fmt.Errorf("scan event: %w", err)
	}

	start, err := time.Parse(event.TimeLayout, startRaw)
	if err != nil {
		return event.Event{}, fmt.Errorf("scan event %s: parse start_time %q: %w", id, startRaw, err)
	}

	var parts []string
	if err := json.Unmarshal([]byte(partsRaw), &parts); err != nil {
		return event.Event{}, fmt.Errorf("scan event %s: parse participants: %w", id, err)
	}

	ev, err := event.Restore(id, name, start, parts)
	if err != nil {
		return event.Event{}, fmt.Errorf("scan event %s: %w", id, err)
	}

	return ev, nil
}
