package pages

import (
	"context"
	"net/http"

	"phoenix/internal/session"
	"phoenix/internal/state"
	"phoenix/navigation"
	"phoenix/shared/constant"
	"phoenix/shared/failure"
	"phoenix/transport/http/render"

	"github.com/rs/zerolog/log"
)

// Kit bundles what every page handler needs: the template renderer, the
// session manager and the role navigation table.
type Kit struct {
	renderer *render.Renderer
	sessions *session.Manager
	nav      *navigation.NavigationData
}

func NewKit(renderer *render.Renderer, sessions *session.Manager, nav *navigation.NavigationData) *Kit {
	return &Kit{
		renderer: renderer,
		sessions: sessions,
		nav:      nav,
	}
}

// Render writes a page with the session envelope (user, nav, toasts).
// Flash notifications are one-shot: rendering drains them.
func (k *Kit) Render(w http.ResponseWriter, r *http.Request, code int, template, title string, data any) {
	ctx := r.Context()

	page := render.Page{Title: title, Data: data}

	id, snapshot, ok := session.FromContext(ctx)
	if ok {
		page.User = snapshot.User
		page.Nav = k.nav.Items(snapshot.Role())
		page.Notifications = snapshot.Notifications

		if len(snapshot.Notifications) > 0 {
			drained := state.Apply(snapshot, state.NotificationsDrained{})

			if err := k.sessions.Update(ctx, id, drained); err != nil {
				log.Error().Err(err).Msg("failed to drain notifications")
			}
		}
	}

	k.renderer.Render(w, code, template, page)
}

// Error renders the standalone error page without touching the session.
func (k *Kit) Error(w http.ResponseWriter, code int, message string) {
	k.renderer.Error(w, code, message)
}

// Flash queues a one-shot notification for the next rendered page,
// starting a session when the visitor has none yet.
func (k *Kit) Flash(ctx context.Context, w http.ResponseWriter, level, message string) {
	action := state.NotificationPushed{
		Notification: state.Notification{Level: level, Message: message},
	}

	id, snapshot, ok := session.FromContext(ctx)
	if ok {
		if err := k.sessions.Update(ctx, id, state.Apply(snapshot, action)); err != nil {
			log.Error().Err(err).Msg("failed to store flash notification")
		}

		return
	}

	if _, err := k.sessions.Start(ctx, w, state.Apply(state.Snapshot{}, action)); err != nil {
		log.Error().Err(err).Msg("failed to start session for flash notification")
	}
}

// FlashAndRedirect is the POST-redirect-GET tail of every form handler.
func (k *Kit) FlashAndRedirect(w http.ResponseWriter, r *http.Request, level, message, to string) {
	k.Flash(r.Context(), w, level, message)
	http.Redirect(w, r, to, http.StatusFound)
}

// Fail turns a backend error into the right page response. A 401 means
// the stored token went stale: the session is torn down and the visitor
// lands on the login form. Anything else becomes an error flash on the
// fallback route.
func (k *Kit) Fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	ctx := r.Context()

	if failure.IsUnauthorized(err) {
		id, _, _ := session.FromContext(ctx)
		k.sessions.Destroy(ctx, w, id)

		http.Redirect(w, r, constant.RouteLogin, http.StatusFound)

		return
	}

	k.FlashAndRedirect(w, r, state.NotificationError, err.Error(), fallback)
}

// Snapshot exposes the loaded session to handlers that mutate it.
func (k *Kit) Snapshot(ctx context.Context) (string, state.Snapshot, bool) {
	return session.FromContext(ctx)
}

// Apply folds an action into the visitor's snapshot and persists it.
// A no-session request is a quiet no-op: the next sign-in rebuilds state.
func (k *Kit) Apply(ctx context.Context, action state.Action) {
	id, snapshot, ok := session.FromContext(ctx)
	if !ok {
		return
	}

	if err := k.sessions.Update(ctx, id, state.Apply(snapshot, action)); err != nil {
		log.Error().Err(err).Msg("failed to persist state change")
	}
}

// Sessions hands the manager to handlers that run the full login and
// logout lifecycle.
func (k *Kit) Sessions() *session.Manager {
	return k.sessions
}

// HomeRoute resolves where a role lands after sign-in.
func (k *Kit) HomeRoute(role string) string {
	return k.nav.HomeRoute(role)
}
