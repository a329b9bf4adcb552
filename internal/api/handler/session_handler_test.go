package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

type stubSessionService struct {
	loginFn  func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	logoutFn func(ctx context.Context, sessionID string) error
}

func (s *stubSessionService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubSessionService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("session_id", "sid-1")
	c.Set("token", "tok-abc")
	c.Set("subject", "maria")
	return c
}

func TestSessionHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "maria" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			return &ports.LoginResult{
				SessionID: "sid-1",
				Route:     domain.RouteHR,
				Session:   domain.Session{Subject: "maria", Roles: []string{"ROLE_RRHH"}},
			}, nil
		},
	}
	h := NewSessionHandler(stub)

	body := strings.NewReader(`{"username":"maria","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/session/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["session_id"] != "sid-1" || resp["route"] != "/rrhh" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSessionHandler_Login_MissingFields(t *testing.T) {
	e := newTestEcho()
	h := NewSessionHandler(&stubSessionService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(`{"username":"maria"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestSessionHandler_Login_ServiceError(t *testing.T) {
	e := newTestEcho()
	h := NewSessionHandler(&stubSessionService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(`{"username":"maria","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("service error must propagate to the error handler, got %v", err)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	e := newTestEcho()
	deleted := ""
	h := NewSessionHandler(&stubSessionService{
		logoutFn: func(_ context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/session/logout", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "sid-1" {
		t.Fatalf("expected sid-1 deleted, got %q", deleted)
	}
}

func TestSessionHandler_Logout_NoSession(t *testing.T) {
	e := newTestEcho()
	h := NewSessionHandler(&stubSessionService{
		logoutFn: func(context.Context, string) error {
			t.Fatalf("service must not be called without a session")
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/session/logout", nil)
	rec := httptest.NewRecorder()

	err := h.Logout(e.NewContext(req, rec))
	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
