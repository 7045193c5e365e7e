package session

import (
	"context"
	"errors"
	"net/http"
	"phoenix/config"
	"phoenix/infras/otel"
	"phoenix/infras/token"
	"phoenix/internal/state"
	"phoenix/shared/constant"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoSession = errors.New("no active session")
	// ErrCorrupted marks a stored record that parses but no longer has a
	// usable shape. The only safe recovery is clearing it and signing in
	// again.
	ErrCorrupted = errors.New("session record is corrupted")
)

// Manager ties the signed cookie to the server-side snapshot. Handlers go
// through it for every read and write of visitor state.
type Manager struct {
	config *config.Config
	store  Store
	tokens token.Tokens
	otel   otel.Otel
}

func NewManager(cfg *config.Config, store Store, tokens token.Tokens, ot otel.Otel) *Manager {
	return &Manager{
		config: cfg,
		store:  store,
		tokens: tokens,
		otel:   ot,
	}
}

func (m *Manager) ttl() time.Duration {
	return time.Duration(m.config.Session.TTLMinutes) * time.Minute
}

// Start persists a fresh snapshot and sets the signed cookie. Used on
// sign-in and whenever an anonymous visitor first needs state (flash
// messages, pending verification).
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, snapshot state.Snapshot) (string, error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelSessionScopeName, "Manager.Start")
	defer scope.End()

	id := uuid.NewString()

	if err := m.store.Save(ctx, id, snapshot, m.ttl()); err != nil {
		scope.TraceIfError(err)

		return "", err
	}

	signed, err := m.tokens.Issue(id, snapshot.Role())
	if err != nil {
		scope.TraceIfError(err)

		return "", err
	}

	m.setCookie(w, signed, m.ttl())

	return id, nil
}

// Load resolves the request's cookie to its snapshot. Returns ErrNoSession
// when there is no usable cookie and ErrCorrupted when the stored account
// record fails its shape check.
func (m *Manager) Load(ctx context.Context, r *http.Request) (string, state.Snapshot, error) {
	cookie, err := r.Cookie(m.config.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return "", state.Snapshot{}, ErrNoSession
	}

	claims, err := m.tokens.Validate(cookie.Value)
	if err != nil {
		return "", state.Snapshot{}, ErrNoSession
	}

	snapshot, err := m.store.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", state.Snapshot{}, ErrNoSession
		}

		return "", state.Snapshot{}, err
	}

	if snapshot.User != nil && !snapshot.User.Valid() {
		log.Warn().Str("session_id", claims.SessionID).Msg("stored account record failed shape check")

		return claims.SessionID, state.Snapshot{}, ErrCorrupted
	}

	return claims.SessionID, snapshot, nil
}

// Update persists a changed snapshot under its existing ID, refreshing the
// TTL.
func (m *Manager) Update(ctx context.Context, id string, snapshot state.Snapshot) error {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelSessionScopeName, "Manager.Update")
	defer scope.End()

	err := m.store.Save(ctx, id, snapshot, m.ttl())
	scope.TraceIfError(err)

	return err
}

// Destroy drops the snapshot and expires the cookie. Called on sign-out, on
// a corrupted record, and whenever the backend answers 401.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, id string) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelSessionScopeName, "Manager.Destroy")
	defer scope.End()

	if id != "" {
		if err := m.store.Delete(ctx, id); err != nil {
			scope.TraceIfError(err)
			log.Error().Err(err).Str("session_id", id).Msg("failed to delete session")
		}
	}

	m.setCookie(w, "", -time.Hour)
}

func (m *Manager) setCookie(w http.ResponseWriter, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.Session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.config.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
