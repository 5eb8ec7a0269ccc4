// Package handler turns user intents (create, edit, submit, delete, move,
// quick-add) into event store mutations. It knows nothing about how the
// calendar is drawn; the render loop feeds it and re-queries afterwards.
package handler

import (
	"moncal/src-cal/event"

	"github.com/olebedev/when"
)

// Env is what the intent handlers need from the app.
type Env struct {
	Events *event.Store
	// default color for events created without one
	Accent string
	// quick-add phrase parser
	When *when.Parser
}

type SessionState int

const (
	Closed SessionState = iota
	CreatePending
	EditPending
)

// Session is the modal editing state machine: Closed -> CreatePending on a
// create intent, Closed -> EditPending on an edit intent, and back to Closed
// on cancel, successful submit, or delete. While open it carries the draft
// the form fields are bound to.
type Session struct {
	State SessionState
	Draft event.Event
}

func (s *Session) OpenCreate(dateKey string) {
	s.Draft = event.Event{Date: dateKey}
	s.State = CreatePending
}

func (s *Session) OpenEdit(ev event.Event) {
	s.Draft = ev
	s.State = EditPending
}

// Close discards the draft without touching the store.
func (s *Session) Close() {
	s.Draft = event.Event{}
	s.State = Closed
}
