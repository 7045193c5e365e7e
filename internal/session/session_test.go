package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phoenix/config"
	otelMocks "phoenix/infras/otel/mocks"
	"phoenix/infras/token"
	userModel "phoenix/internal/domains/user/model"
	"phoenix/internal/session"
	"phoenix/internal/state"
	"phoenix/shared/constant"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Phoenix Hotels"
	cfg.Session.CookieName = "phoenix_session"
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTLMinutes = 60

	return cfg
}

func newManager(t *testing.T) *session.Manager {
	t.Helper()

	cfg := testConfig()

	return session.NewManager(cfg, session.NewMemoryStore(), token.New(cfg), otelMocks.NewOtel())
}

func signedInSnapshot(role string) state.Snapshot {
	return state.Apply(state.Snapshot{}, state.LoggedIn{
		User:  userModel.User{ID: "u-1", Email: "amina@example.com", Role: role},
		Token: "backend-token",
	})
}

func requestWithCookies(recorder *httptest.ResponseRecorder) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/customer", nil)
	for _, cookie := range recorder.Result().Cookies() {
		request.AddCookie(cookie)
	}

	return request
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	snapshot := signedInSnapshot(constant.RoleCustomer)

	require.NoError(t, store.Save(ctx, "s-1", snapshot, time.Minute))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	require.NoError(t, store.Delete(ctx, "s-1"))

	_, err = store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStoreExpiredEntryIsMissing(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s-1", state.Snapshot{}, -time.Second))

	_, err := store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManagerStartAndLoad(t *testing.T) {
	manager := newManager(t)
	recorder := httptest.NewRecorder()

	id, err := manager.Start(context.Background(), recorder, signedInSnapshot(constant.RoleStaff))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "phoenix_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	gotID, snapshot, err := manager.Load(context.Background(), requestWithCookies(recorder))
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, snapshot.SignedIn())
	assert.Equal(t, constant.RoleStaff, snapshot.Role())
}

func TestManagerLoadWithoutCookie(t *testing.T) {
	manager := newManager(t)

	request := httptest.NewRequest(http.MethodGet, "/customer", nil)

	_, _, err := manager.Load(context.Background(), request)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestManagerLoadWithGarbageCookie(t *testing.T) {
	manager := newManager(t)

	request := httptest.NewRequest(http.MethodGet, "/customer", nil)
	request.AddCookie(&http.Cookie{Name: "phoenix_session", Value: "not-a-jwt"})

	_, _, err := manager.Load(context.Background(), request)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestManagerLoadCorruptedAccountRecord(t *testing.T) {
	manager := newManager(t)
	recorder := httptest.NewRecorder()

	// A record missing its ID parses fine but fails the shape check.
	broken := state.Snapshot{
		User:  &userModel.User{Role: constant.RoleCustomer},
		Token: "backend-token",
	}

	_, err := manager.Start(context.Background(), recorder, broken)
	require.NoError(t, err)

	_, _, err = manager.Load(context.Background(), requestWithCookies(recorder))
	assert.ErrorIs(t, err, session.ErrCorrupted)
}

func TestManagerLoadUnrecognizedRole(t *testing.T) {
	manager := newManager(t)
	recorder := httptest.NewRecorder()

	broken := state.Snapshot{
		User:  &userModel.User{ID: "u-1", Role: "superuser"},
		Token: "backend-token",
	}

	_, err := manager.Start(context.Background(), recorder, broken)
	require.NoError(t, err)

	_, _, err = manager.Load(context.Background(), requestWithCookies(recorder))
	assert.ErrorIs(t, err, session.ErrCorrupted)
}

func TestManagerUpdate(t *testing.T) {
	manager := newManager(t)
	recorder := httptest.NewRecorder()

	id, err := manager.Start(context.Background(), recorder, signedInSnapshot(constant.RoleCustomer))
	require.NoError(t, err)

	updated := state.Apply(signedInSnapshot(constant.RoleCustomer), state.NotificationPushed{
		Notification: state.Notification{Level: state.NotificationSuccess, Message: "Booking created"},
	})
	require.NoError(t, manager.Update(context.Background(), id, updated))

	_, snapshot, err := manager.Load(context.Background(), requestWithCookies(recorder))
	require.NoError(t, err)
	require.Len(t, snapshot.Notifications, 1)
	assert.Equal(t, "Booking created", snapshot.Notifications[0].Message)
}

func TestManagerDestroy(t *testing.T) {
	manager := newManager(t)
	startRecorder := httptest.NewRecorder()

	id, err := manager.Start(context.Background(), startRecorder, signedInSnapshot(constant.RoleCustomer))
	require.NoError(t, err)

	destroyRecorder := httptest.NewRecorder()
	manager.Destroy(context.Background(), destroyRecorder, id)

	cookies := destroyRecorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	_, _, err = manager.Load(context.Background(), requestWithCookies(startRecorder))
	assert.ErrorIs(t, err, session.ErrNoSession)
}
