package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"phoenix/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "SessionExpiredError",
			failure: failure.SessionExpiredError,
			code:    http.StatusUnauthorized,
			message: "Your session has expired, please sign in again",
		},
		{
			name:    "NetworkError",
			failure: failure.NetworkError,
			code:    http.StatusServiceUnavailable,
			message: "Network error. Please check your connection.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, tt.failure.Code)
			}

			if tt.failure.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "direct failure",
			err:  failure.Unauthorized("no token"),
			code: http.StatusUnauthorized,
		},
		{
			name: "wrapped failure",
			err:  fmt.Errorf("calling backend: %w", failure.NotFound("hotel not found")),
			code: http.StatusNotFound,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	if !failure.IsUnauthorized(failure.SessionExpiredError) {
		t.Error("expected SessionExpiredError to be unauthorized")
	}

	if failure.IsUnauthorized(failure.ForbiddenError) {
		t.Error("forbidden must not count as unauthorized")
	}

	if failure.IsUnauthorized(nil) {
		t.Error("nil error must not count as unauthorized")
	}
}
