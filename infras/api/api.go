package api

//go:generate go run go.uber.org/mock/mockgen -source=./api.go -destination=./mocks/api_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"phoenix/config"
	"phoenix/infras/otel"
	"phoenix/shared/constant"
	"phoenix/shared/failure"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimeoutSeconds = 30

// Page mirrors the backend's paginated list envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Client is the single HTTP path to the hotel backend. Every business
// decision happens on the other side of it; callers only relay intent and
// render whatever state comes back.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Patch(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, out any) error
}

type clientImpl struct {
	http    *http.Client
	baseURL string
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	timeout := cfg.Backend.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &clientImpl{
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		otel:    otel,
	}
}

// WithToken stores the visitor's backend token on the context so the client
// can attach it to outgoing requests.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyBackendToken, token)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(constant.ContextKeyBackendToken).(string)

	return token
}

func (c *clientImpl) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := path
	if len(query) > 0 {
		target = path + "?" + query.Encode()
	}

	return c.do(ctx, http.MethodGet, target, nil, out)
}

func (c *clientImpl) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *clientImpl) Patch(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *clientImpl) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// backendError is the backend's normalized error body. Either field may be
// set depending on which view raised it.
type backendError struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (c *clientImpl) do(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, fmt.Sprintf("backend.%s %s", method, path))
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"http.method": method,
		"http.path":   path,
	})

	var reader io.Reader

	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return failure.InternalError(fmt.Errorf("failed to encode request body: %w", marshalErr)) //nolint:wrapcheck
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return failure.InternalError(fmt.Errorf("failed to build request: %w", err)) //nolint:wrapcheck
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	if token := tokenFromContext(ctx); token != "" {
		request.Header.Set(constant.RequestHeaderAuthorization, constant.TokenScheme+" "+token)
	}

	response, err := c.http.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")

		return failure.NetworkError //nolint:wrapcheck
	}

	defer func() {
		_ = response.Body.Close()
	}()

	scope.SetAttribute("http.status_code", response.StatusCode)

	if response.StatusCode >= http.StatusBadRequest {
		return c.normalizeError(response)
	}

	if out == nil || response.StatusCode == http.StatusNoContent {
		return nil
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to decode backend response")

		return failure.InternalError(fmt.Errorf("failed to decode backend response: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// normalizeError flattens a backend rejection into a Failure carrying the
// upstream status code. The 401 case is what forces session teardown upstream.
func (c *clientImpl) normalizeError(response *http.Response) error {
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return failure.FromStatus(response.StatusCode, http.StatusText(response.StatusCode)) //nolint:wrapcheck
	}

	parsed := backendError{}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return failure.FromStatus(response.StatusCode, parsed.Message) //nolint:wrapcheck
		}

		if parsed.Detail != "" {
			return failure.FromStatus(response.StatusCode, parsed.Detail) //nolint:wrapcheck
		}
	}

	return failure.FromStatus(response.StatusCode, http.StatusText(response.StatusCode)) //nolint:wrapcheck
}
