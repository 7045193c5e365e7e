package middleware

import (
	"net/http"
	"slices"

	"phoenix/infras/api"
	"phoenix/infras/otel"
	"phoenix/internal/session"
	"phoenix/navigation"
	"phoenix/shared/constant"
	"phoenix/shared/failure"
	"phoenix/transport/http/response"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Guard is the route-level access layer. It only shapes the UX: the
// backend re-checks every request, so a bypassed guard leaks nothing.
type Guard struct {
	sessions *session.Manager
	nav      *navigation.NavigationData
	otel     otel.Otel
}

func NewGuard(sessions *session.Manager, nav *navigation.NavigationData, ot otel.Otel) *Guard {
	return &Guard{
		sessions: sessions,
		nav:      nav,
		otel:     ot,
	}
}

// WithSession resolves the cookie once per request and stashes the
// snapshot in the context. Anonymous requests pass through untouched; a
// corrupted record is cleared on the spot so the visitor starts clean.
func (g *Guard) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		_, scope := g.otel.NewScope(ctx, constant.OtelHandlerScopeName, "guard.session")

		id, snapshot, err := g.sessions.Load(ctx, r)
		if err != nil {
			if errors.Is(err, session.ErrCorrupted) {
				g.sessions.Destroy(ctx, w, id)
			}

			scope.End()
			next.ServeHTTP(w, r)

			return
		}

		ctx = session.NewContext(ctx, id, snapshot)
		if snapshot.Token != "" {
			ctx = api.WithToken(ctx, snapshot.Token)
		}

		scope.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePage gates a page route. No roles means any signed-in visitor.
// A signed-in visitor of the wrong role lands on their own dashboard, an
// unknown role on the home page, an anonymous one on the login form. The
// wrapped handler never runs for a rejected request, so no backend call
// is ever made on its behalf.
func (g *Guard) RequirePage(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, snapshot, ok := session.FromContext(r.Context())
			if !ok || !snapshot.SignedIn() {
				http.Redirect(w, r, constant.RouteLogin, http.StatusFound)

				return
			}

			if len(roles) > 0 && !slices.Contains(roles, snapshot.Role()) {
				log.Warn().
					Str("role", snapshot.Role()).
					Str("path", r.URL.Path).
					Msg("role not allowed on this page")

				http.Redirect(w, r, g.nav.HomeRoute(snapshot.Role()), http.StatusFound)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAPI is the JSON variant: 401 for anonymous, 403 for the wrong
// role, no redirects.
func (g *Guard) RequireAPI(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, snapshot, ok := session.FromContext(r.Context())
			if !ok || !snapshot.SignedIn() {
				response.WithError(w, failure.Unauthorized("Sign in to use this endpoint"))

				return
			}

			if len(roles) > 0 && !slices.Contains(roles, snapshot.Role()) {
				response.WithError(w, failure.ForbiddenError)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
