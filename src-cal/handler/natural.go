package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moncal/src-cal/calendar"
	"moncal/src-cal/event"
	"moncal/src-cal/utils"

	"github.com/google/uuid"
)

var ErrNoDateTime = errors.New("no date or time found in text")

// QuickAdd turns a phrase like "standup tomorrow at 9am" into a stored
// event: the date/time part is parsed with when, whatever text is left over
// becomes the title, and the end defaults to an hour after the start.
func QuickAdd(ctx context.Context, env Env, text string, now time.Time) (event.Event, error) {
	result, err := env.When.Parse(text, now)
	if err != nil {
		return event.Event{}, fmt.Errorf("QuickAdd: %w", err)
	}
	if result == nil {
		return event.Event{}, ErrNoDateTime
	}

	leftover := text[:result.Index] + text[result.Index+len(result.Text):]
	title := utils.CleanupString(strings.Join(strings.Fields(leftover), " "))
	if title == "" {
		return event.Event{}, ErrTitleRequired
	}

	start := result.Time.Format("15:04")
	_, end := calendar.ClampTimeRange(start, start)

	ev := event.Event{
		ID:    uuid.NewString(),
		Date:  calendar.DateKey(result.Time),
		Title: title,
		Start: start,
		End:   end,
		Color: env.Accent,
	}
	if err := env.Events.Upsert(ctx, ev); err != nil {
		return event.Event{}, err
	}
	return ev, nil
}
