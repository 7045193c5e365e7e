package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"phoenix/config"
	"phoenix/infras/api"
	otelMocks "phoenix/infras/otel/mocks"
	"phoenix/infras/token"
	authMocks "phoenix/internal/domains/auth/mocks"
	authDto "phoenix/internal/domains/auth/model/dto"
	authService "phoenix/internal/domains/auth/service"
	userMocks "phoenix/internal/domains/user/mocks"
	"phoenix/internal/domains/user/model"
	userService "phoenix/internal/domains/user/service"
	userHandler "phoenix/internal/handlers/user"
	"phoenix/internal/handlers/pages"
	"phoenix/internal/session"
	"phoenix/internal/state"
	"phoenix/navigation"
	cacheMocks "phoenix/shared/cache/mocks"
	"phoenix/shared/constant"
	"phoenix/transport/http/middleware"
	"phoenix/transport/http/render"
)

type fixture struct {
	router     chi.Router
	userClient *userMocks.MockUser
	authClient *authMocks.MockAuth
	sessions   *session.Manager
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "Phoenix Hotels"
	cfg.Session.CookieName = "phoenix_session"
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTLMinutes = 60

	renderer, err := render.New(cfg)
	require.NoError(t, err)

	sessions := session.NewManager(cfg, session.NewMemoryStore(), token.New(cfg), otelMocks.NewOtel())
	nav := navigation.Get()
	require.NotNil(t, nav)

	kit := pages.NewKit(renderer, sessions, nav)
	guard := middleware.NewGuard(sessions, nav, otelMocks.NewOtel())

	userClient := userMocks.NewMockUser(ctrl)
	authClient := authMocks.NewMockAuth(ctrl)

	handler := userHandler.New(
		userService.New(userClient, cfg, cacheMocks.NewMockRedisCache(ctrl), otelMocks.NewOtel()),
		authService.New(authClient, otelMocks.NewOtel()),
		cfg, kit, guard, otelMocks.NewOtel(),
	)

	router := chi.NewRouter()
	router.Use(guard.WithSession)
	handler.Router(router)

	return fixture{router: router, userClient: userClient, authClient: authClient, sessions: sessions}
}

// signIn opens a real session for the role and returns its cookies.
func signIn(t *testing.T, f fixture, role string) []*http.Cookie {
	t.Helper()

	snapshot := state.Apply(state.Snapshot{}, state.LoggedIn{
		User:  model.User{ID: "u-1", Email: "desk@example.com", Role: role},
		Token: "backend-token",
	})

	recorder := httptest.NewRecorder()
	_, err := f.sessions.Start(context.Background(), recorder, snapshot)
	require.NoError(t, err)

	return recorder.Result().Cookies()
}

func doGet(f fixture, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)

	return recorder
}

func doPost(f fixture, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)

	return recorder
}

func TestGuestListShowsCustomersForStaff(t *testing.T) {
	f := newFixture(t)

	f.userClient.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(api.Page[model.User]{
			Count: 2,
			Results: []model.User{
				{ID: "u-2", Email: "amina@example.com", FirstName: "Amina", LastName: "Diallo", Role: constant.RoleCustomer},
				{ID: "u-3", Email: "bob@example.com", FirstName: "Bob", LastName: "Otieno", Role: constant.RoleCustomer},
			},
		}, nil)

	recorder := doGet(f, "/staff/users", signIn(t, f, constant.RoleStaff))
	require.Equal(t, http.StatusOK, recorder.Code)

	doc, err := goquery.NewDocumentFromReader(recorder.Body)
	require.NoError(t, err)

	rows := doc.Find("tbody tr")
	assert.Equal(t, 2, rows.Length())
	assert.Contains(t, rows.Text(), "amina@example.com")
	assert.Contains(t, rows.Text(), "bob@example.com")
}

func TestGuestListSearchNarrowsLoadedPage(t *testing.T) {
	f := newFixture(t)

	f.userClient.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(api.Page[model.User]{
			Count: 2,
			Results: []model.User{
				{ID: "u-2", Email: "amina@example.com", FirstName: "Amina", LastName: "Diallo", Role: constant.RoleCustomer},
				{ID: "u-3", Email: "bob@example.com", FirstName: "Bob", LastName: "Otieno", Role: constant.RoleCustomer},
			},
		}, nil)

	recorder := doGet(f, "/staff/users?q=amina", signIn(t, f, constant.RoleStaff))
	require.Equal(t, http.StatusOK, recorder.Code)

	doc, err := goquery.NewDocumentFromReader(recorder.Body)
	require.NoError(t, err)

	rows := doc.Find("tbody tr")
	assert.Equal(t, 1, rows.Length())
	assert.Contains(t, rows.Text(), "amina@example.com")
	assert.NotContains(t, rows.Text(), "bob@example.com")

	// The search box keeps the applied term.
	value, _ := doc.Find("form.filter-form input[name=q]").Attr("value")
	assert.Equal(t, "amina", value)
}

func TestGuestListBouncesCustomers(t *testing.T) {
	f := newFixture(t)

	// No List expectation: a rejected visitor never triggers a backend call.
	recorder := doGet(f, "/staff/users", signIn(t, f, constant.RoleCustomer))

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, constant.RouteCustomerHome, recorder.Header().Get("Location"))
}

func TestRegisterGuestFromFrontDesk(t *testing.T) {
	f := newFixture(t)

	f.authClient.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(authDto.RegisterResponse{Email: "amina@example.com"}, nil).
		Times(1)

	recorder := doPost(f, "/staff/users/register", url.Values{
		"email":            {"amina@example.com"},
		"password":         {"s3cret-pass"},
		"confirm_password": {"s3cret-pass"},
		"first_name":       {"Amina"},
		"last_name":        {"Diallo"},
	}, signIn(t, f, constant.RoleStaff))

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, constant.RouteStaffUsers, recorder.Header().Get("Location"))
}

func TestRegisterGuestInvalidFormNeverReachesBackend(t *testing.T) {
	f := newFixture(t)

	recorder := doPost(f, "/staff/users/register", url.Values{
		"email":            {"amina@example.com"},
		"password":         {"s3cret-pass"},
		"confirm_password": {"different-pass"},
		"first_name":       {"Amina"},
		"last_name":        {"Diallo"},
	}, signIn(t, f, constant.RoleStaff))

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, constant.RouteStaffUsers, recorder.Header().Get("Location"))
}
