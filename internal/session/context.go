package session

import (
	"context"
	"phoenix/internal/state"
	"phoenix/shared/constant"
)

// NewContext stashes the loaded session alongside the request so handlers
// never re-read the store.
func NewContext(ctx context.Context, id string, snapshot state.Snapshot) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeySessionID, id)

	return context.WithValue(ctx, constant.ContextKeySessionState, snapshot)
}

// FromContext returns the session placed by the guard middleware. ok is
// false on anonymous requests.
func FromContext(ctx context.Context) (string, state.Snapshot, bool) {
	id, ok := ctx.Value(constant.ContextKeySessionID).(string)
	if !ok || id == "" {
		return "", state.Snapshot{}, false
	}

	snapshot, ok := ctx.Value(constant.ContextKeySessionState).(state.Snapshot)
	if !ok {
		return "", state.Snapshot{}, false
	}

	return id, snapshot, true
}
