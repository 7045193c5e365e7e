package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"phoenix/config"
	"phoenix/infras/api"
	otelMocks "phoenix/infras/otel/mocks"
	"phoenix/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Name string `json:"name"`
}

func newClient(t *testing.T, baseURL string, timeoutSeconds int) api.Client {
	t.Helper()

	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.TimeoutSeconds = timeoutSeconds

	return api.New(cfg, otelMocks.NewOtel())
}

func TestClientGet(t *testing.T) {
	t.Run("success, decodes paginated envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/hotels/", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"count":13,"next":"/hotels/?page=3","previous":"/hotels/?page=1","results":[{"name":"Phoenix Nairobi"}]}`))
		}))
		defer server.Close()

		client := newClient(t, server.URL, 30)

		query := url.Values{}
		query.Set("page", "2")

		var page api.Page[echoPayload]
		err := client.Get(context.Background(), "/hotels/", query, &page)

		require.NoError(t, err)
		assert.Equal(t, 13, page.Count)
		require.Len(t, page.Results, 1)
		assert.Equal(t, "Phoenix Nairobi", page.Results[0].Name)
	})

	t.Run("attaches token from context", func(t *testing.T) {
		var gotAuth string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newClient(t, server.URL, 30)

		ctx := api.WithToken(context.Background(), "abc123")
		err := client.Get(ctx, "/profile/", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "Token abc123", gotAuth)
	})

	t.Run("no token, no authorization header", func(t *testing.T) {
		var gotAuth string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newClient(t, server.URL, 30)

		err := client.Get(context.Background(), "/hotels/", nil, nil)

		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClientErrorNormalization(t *testing.T) {
	serve := func(status int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	}

	t.Run("message field wins", func(t *testing.T) {
		server := serve(http.StatusBadRequest, `{"message":"Check-out must be after check-in"}`)
		defer server.Close()

		client := newClient(t, server.URL, 30)

		err := client.Post(context.Background(), "/bookings/", map[string]string{}, nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "Check-out must be after check-in", err.Error())
	})

	t.Run("detail field as fallback", func(t *testing.T) {
		server := serve(http.StatusForbidden, `{"detail":"You do not have permission to perform this action."}`)
		defer server.Close()

		client := newClient(t, server.URL, 30)

		err := client.Delete(context.Background(), "/reviews/9/", nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, "You do not have permission to perform this action.", err.Error())
	})

	t.Run("unparseable body falls back to status text", func(t *testing.T) {
		server := serve(http.StatusInternalServerError, `<html>oops</html>`)
		defer server.Close()

		client := newClient(t, server.URL, 30)

		err := client.Get(context.Background(), "/dashboard/stats/", nil, nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Error())
	})

	t.Run("401 is recognized as unauthorized", func(t *testing.T) {
		server := serve(http.StatusUnauthorized, `{"detail":"Invalid token."}`)
		defer server.Close()

		client := newClient(t, server.URL, 30)

		err := client.Get(context.Background(), "/bookings/my/", nil, nil)

		require.Error(t, err)
		assert.True(t, failure.IsUnauthorized(err))
	})

	t.Run("unreachable backend maps to network error", func(t *testing.T) {
		client := newClient(t, "http://127.0.0.1:1", 30)

		err := client.Get(context.Background(), "/hotels/", nil, nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
		assert.Equal(t, failure.NetworkError.Message, err.Error())
	})
}

func TestClientTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow timeout test")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	client := newClient(t, server.URL, 1)

	err := client.Get(context.Background(), "/hotels/", nil, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

func TestClientPatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Updated"}`))
	}))
	defer server.Close()

	client := newClient(t, server.URL, 30)

	var out echoPayload
	err := client.Patch(context.Background(), "/profile/", echoPayload{Name: "Updated"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Updated", out.Name)
}
