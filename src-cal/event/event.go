package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"moncal/src-cal/store"
)

// StorageKey is the single KV key the whole collection lives under.
const StorageKey = "calendar_events_v1"

// Event is one scheduled item. Date is a zero-padded YYYY-MM-DD key; Start
// and End are zero-padded 24-hour HH:MM strings. Stored order of the
// collection carries no meaning, the per-day view re-sorts at render time.
type Event struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
	Desc  string `json:"desc"`
}

// Store does CRUD over the persisted collection. Every mutation reads the
// full array, edits it, and writes the whole thing back in one Set; there is
// no partial-record update, so sequential writers are last-writer-wins.
type Store struct {
	kv store.KV
}

func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Load returns the persisted collection. It fails open: a missing key, a
// read error, or a value that does not decode as an event array all degrade
// to an empty collection. Records are not re-validated here; a hand-edited
// row with end <= start comes back as-is.
func (s *Store) Load(ctx context.Context) []Event {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		slog.Warn("can't read event collection, starting empty", "error", err)
		return []Event{}
	}
	if !ok || raw == "" {
		return []Event{}
	}

	var events []Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		slog.Warn("malformed event collection, starting empty", "error", err)
		return []Event{}
	}
	if events == nil {
		return []Event{}
	}
	return events
}

// Upsert replaces the record matching ev.ID in place, keeping its position
// in the stored order, or appends when no record matches.
func (s *Store) Upsert(ctx context.Context, ev Event) error {
	if ev.ID == "" {
		return fmt.Errorf("(*Store).Upsert: event id is blank")
	}

	events := s.Load(ctx)
	replaced := false
	for i := range events {
		if events[i].ID == ev.ID {
			events[i] = ev
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, ev)
	}
	return s.save(ctx, events)
}

// DeleteByID removes the matching record; an unknown id is a no-op.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	events := s.Load(ctx)
	kept := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	return s.save(ctx, kept)
}

// Reschedule moves the matching event to targetDate, touching no other
// field. targetDate is taken as-is; past dates and days outside the shown
// month are all fine. Unknown ids fall through silently, a stale drag
// payload should not surface noise.
func (s *Store) Reschedule(ctx context.Context, id string, targetDate string) error {
	events := s.Load(ctx)
	for i := range events {
		if events[i].ID == id {
			events[i].Date = targetDate
			return s.save(ctx, events)
		}
	}
	return nil
}

func (s *Store) save(ctx context.Context, events []Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("(*Store).save: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("(*Store).save: %w", err)
	}
	return nil
}
