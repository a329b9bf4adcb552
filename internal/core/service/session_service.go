package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
	"github.com/smarthr/hr-gateway/internal/core/token"
)

// SessionService is the router/session gate. One call to Login performs
// exactly one backend authentication attempt and, when it succeeds, derives
// exactly one navigation target from the token's role claims.
type SessionService struct {
	backend ports.HRBackend
	store   ports.SessionStore
	log     zerolog.Logger
}

func NewSessionService(backend ports.HRBackend, store ports.SessionStore, log zerolog.Logger) *SessionService {
	return &SessionService{backend: backend, store: store, log: log}
}

// Login authenticates against the backend, decodes the returned token and
// dispatches on its roles: ROLE_RRHH routes to the HR dashboard regardless
// of other roles, ROLE_EMPLOYEE alone routes to the employee dashboard,
// anything else is ErrUnauthorizedRole. The session is persisted before the
// route is reported, so a navigated client always finds its token stored.
func (s *SessionService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.backend.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrBackendRejected) {
			// Generic failure: the UI never learns whether the user exists.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	claims, err := token.Decode(tok)
	if err != nil {
		return nil, err
	}
	if len(claims.Roles) == 0 {
		return nil, domain.ErrInvalidToken
	}

	route, err := domain.RouteForRoles(claims.Roles)
	if err != nil {
		return nil, err
	}

	session := domain.Session{
		Token:   tok,
		Subject: claims.Subject,
		Roles:   claims.Roles,
	}
	id := uuid.NewString()
	if err := s.store.Save(ctx, id, session); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("subject", claims.Subject).
		Str("route", string(route)).
		Msg("login succeeded")

	return &ports.LoginResult{SessionID: id, Route: route, Session: session}, nil
}

// Logout destroys the session. Theme preference and the assistant
// transcript are keyed by subject and deliberately left in place.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
