package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smarthr/hr-gateway/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_Taxonomy(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"session not found", domain.ErrSessionNotFound, http.StatusUnauthorized},
		{"unauthorized role", domain.ErrUnauthorizedRole, http.StatusForbidden},
		{"employee not found", domain.ErrEmployeeNotFound, http.StatusNotFound},
		{"incomplete profile", domain.ErrIncompleteProfile, http.StatusBadGateway},
		{"assistant unavailable", domain.ErrAssistantUnavailable, http.StatusServiceUnavailable},
		{"backend unreachable", domain.ErrBackendUnreachable, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := handleError(t, tc.err)
			if code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, code)
			}
		})
	}
}

func TestHTTPErrorHandler_BackendDetailSurfaced(t *testing.T) {
	code, msg := handleError(t, &domain.BackendError{Status: http.StatusConflict, Detail: "username already taken"})
	if code != http.StatusConflict {
		t.Fatalf("expected backend status to pass through, got %d", code)
	}
	if msg != "username already taken" {
		t.Fatalf("expected backend detail to surface, got %q", msg)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	_, msg := handleError(t, errors.New("pool exhausted: dsn=secret"))
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "username is required"))
	if code != http.StatusBadRequest || msg != "username is required" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}
