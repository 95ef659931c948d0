package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/starford/cookbook/internal/apperr"
)

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
		code    string
	}{
		{
			name:    "string detail",
			status:  http.StatusNotFound,
			body:    `{"detail": "Recipe not found"}`,
			message: "Recipe not found",
		},
		{
			name:    "object detail",
			status:  http.StatusConflict,
			body:    `{"detail": {"code": "EMAIL_TAKEN", "message": "Email already registered"}}`,
			message: "Email already registered",
			code:    "EMAIL_TAKEN",
		},
		{
			name:    "list detail",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail": [{"msg": "title too long"}, {"msg": "topic invalid"}]}`,
			message: "title too long; topic invalid",
		},
		{
			name:    "empty body",
			status:  http.StatusInternalServerError,
			body:    ``,
			message: "request failed: internal server error",
		},
		{
			name:    "non-json body",
			status:  http.StatusBadGateway,
			body:    `<html>upstream sad</html>`,
			message: "request failed: bad gateway",
		},
		{
			name:    "empty detail list",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail": []}`,
			message: "request failed: unprocessable entity",
		},
		{
			name:    "empty string detail",
			status:  http.StatusBadRequest,
			body:    `{"detail": ""}`,
			message: "request failed: bad request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := normalizeError(tt.status, []byte(tt.body))
			var apiErr *apperr.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type = %T", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.message {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.message)
			}
			if apiErr.Code != tt.code {
				t.Errorf("code = %q, want %q", apiErr.Code, tt.code)
			}
		})
	}
}

func TestNormalizeErrorSentinels(t *testing.T) {
	if err := normalizeError(http.StatusNotFound, nil); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("404 = %v, want ErrNotFound", err)
	}
	if err := normalizeError(http.StatusUnauthorized, nil); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("401 = %v, want ErrUnauthorized", err)
	}
	if err := normalizeError(http.StatusForbidden, nil); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("403 = %v, want ErrForbidden", err)
	}
}
