package handler

import "context"

// Delete removes the event the session is editing and closes the session.
// It is only reachable from an open edit session; anything else is a no-op.
func Delete(ctx context.Context, env Env, session *Session) error {
	if session.State != EditPending || session.Draft.ID == "" {
		return nil
	}
	if err := env.Events.DeleteByID(ctx, session.Draft.ID); err != nil {
		return err
	}
	session.Close()
	return nil
}
