package handler

import (
	"context"
	"errors"
	"strings"

	"moncal/src-cal/calendar"
	"moncal/src-cal/event"

	"github.com/google/uuid"
)

// ErrTitleRequired is shown to the user as a transient message; the session
// stays open so the form keeps its values for correction.
var ErrTitleRequired = errors.New("title is required")

// Submit validates and normalizes the draft, upserts it, and closes the
// session. Nothing is written when validation fails.
func Submit(ctx context.Context, env Env, session *Session, draft event.Event) (event.Event, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return event.Event{}, ErrTitleRequired
	}
	draft.Desc = strings.TrimSpace(draft.Desc)

	draft.Start, draft.End = calendar.ClampTimeRange(draft.Start, draft.End)
	if draft.Color == "" {
		draft.Color = env.Accent
	}
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}

	if err := env.Events.Upsert(ctx, draft); err != nil {
		return event.Event{}, err
	}
	session.Close()
	return draft, nil
}
