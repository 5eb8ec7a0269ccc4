package event_test

import (
	"context"
	"reflect"
	"testing"

	"moncal/src-cal/event"
	"moncal/src-cal/store"

	"github.com/google/uuid"
)

func TestLoadFailsOpen(t *testing.T) {
	ctx := context.Background()

	// key absent
	events := event.NewStore(store.NewMemory()).Load(ctx)
	if len(events) != 0 {
		t.Error("missing key should load empty", events)
	}

	// value is not JSON at all
	kv := store.NewMemory()
	if err := kv.Set(ctx, event.StorageKey, "{definitely not json"); err != nil {
		t.Error(err)
	}
	if events := event.NewStore(kv).Load(ctx); len(events) != 0 {
		t.Error("malformed value should load empty", events)
	}

	// well-formed JSON but not an array
	kv = store.NewMemory()
	if err := kv.Set(ctx, event.StorageKey, `{"id":"e1"}`); err != nil {
		t.Error(err)
	}
	if events := event.NewStore(kv).Load(ctx); len(events) != 0 {
		t.Error("non-array value should load empty", events)
	}

	// a record with end <= start is not re-validated on load
	kv = store.NewMemory()
	if err := kv.Set(ctx, event.StorageKey,
		`[{"id":"e1","date":"2024-06-10","title":"Corrupt","start":"10:00","end":"09:00","color":"","desc":""}]`,
	); err != nil {
		t.Error(err)
	}
	events = event.NewStore(kv).Load(ctx)
	if len(events) != 1 || events[0].End != "09:00" {
		t.Error("storage should accept inverted ranges as-is", events)
	}
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	events := event.NewStore(store.NewMemory())

	e1 := event.Event{ID: uuid.NewString(), Date: "2024-06-10", Title: "Standup", Start: "09:00", End: "09:15"}
	e2 := event.Event{ID: uuid.NewString(), Date: "2024-06-10", Title: "Review", Start: "14:00", End: "15:00"}

	// new ids grow the collection by one each
	if err := events.Upsert(ctx, e1); err != nil {
		t.Error(err)
	}
	if err := events.Upsert(ctx, e2); err != nil {
		t.Error(err)
	}
	if got := events.Load(ctx); len(got) != 2 {
		t.Error("expected 2 events", got)
	}

	// idempotent: same payload again changes nothing
	if err := events.Upsert(ctx, e1); err != nil {
		t.Error(err)
	}
	if got := events.Load(ctx); !reflect.DeepEqual(got, []event.Event{e1, e2}) {
		t.Error("re-upsert changed the collection", got)
	}

	// existing id: replaced in place, position in stored order kept
	changed := e1
	changed.Title = "Standup (moved)"
	changed.Start = "09:30"
	if err := events.Upsert(ctx, changed); err != nil {
		t.Error(err)
	}
	got := events.Load(ctx)
	if len(got) != 2 {
		t.Error("replace should not grow the collection", got)
	}
	if !reflect.DeepEqual(got[0], changed) || !reflect.DeepEqual(got[1], e2) {
		t.Error("replace not in place", got)
	}

	// blank id is refused before any write
	if err := events.Upsert(ctx, event.Event{Title: "No ID"}); err == nil {
		t.Error("expected error for blank id")
	}
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	events := event.NewStore(store.NewMemory())

	e1 := event.Event{ID: uuid.NewString(), Date: "2024-06-10", Title: "Standup"}
	e2 := event.Event{ID: uuid.NewString(), Date: "2024-06-11", Title: "Review"}
	for _, ev := range []event.Event{e1, e2} {
		if err := events.Upsert(ctx, ev); err != nil {
			t.Error(err)
		}
	}

	if err := events.DeleteByID(ctx, e1.ID); err != nil {
		t.Error(err)
	}
	if got := events.Load(ctx); !reflect.DeepEqual(got, []event.Event{e2}) {
		t.Error("delete", got)
	}

	// unknown id is a silent no-op
	if err := events.DeleteByID(ctx, "nope"); err != nil {
		t.Error(err)
	}
	if got := events.Load(ctx); !reflect.DeepEqual(got, []event.Event{e2}) {
		t.Error("delete of unknown id changed the collection", got)
	}
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	events := event.NewStore(store.NewMemory())

	e1 := event.Event{
		ID:    uuid.NewString(),
		Date:  "2024-06-10",
		Title: "Standup",
		Start: "09:00",
		End:   "09:15",
		Color: "#ff0000",
		Desc:  "daily sync",
	}
	e2 := event.Event{ID: uuid.NewString(), Date: "2024-06-11", Title: "Review"}
	for _, ev := range []event.Event{e1, e2} {
		if err := events.Upsert(ctx, ev); err != nil {
			t.Error(err)
		}
	}

	// no validation on the target: the past and other months are fine
	if err := events.Reschedule(ctx, e1.ID, "2019-01-01"); err != nil {
		t.Error(err)
	}
	got := events.Load(ctx)
	want := e1
	want.Date = "2019-01-01"
	if !reflect.DeepEqual(got[0], want) {
		t.Error("reschedule touched more than the date", got[0])
	}
	if !reflect.DeepEqual(got[1], e2) {
		t.Error("reschedule touched another event", got[1])
	}

	// unknown id leaves everything untouched
	before := events.Load(ctx)
	if err := events.Reschedule(ctx, "nope", "2024-06-12"); err != nil {
		t.Error(err)
	}
	if !reflect.DeepEqual(events.Load(ctx), before) {
		t.Error("reschedule of unknown id changed the collection")
	}
}
