package handler

import "context"

// Move is the drop end of drag rescheduling: reassign one event to
// targetDate. The drag payload is trusted, so an unknown id stays a silent
// no-op and targetDate is not validated against the shown month.
func Move(ctx context.Context, env Env, id string, targetDate string) error {
	return env.Events.Reschedule(ctx, id, targetDate)
}
