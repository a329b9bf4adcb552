package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// HeaderSessionID carries the session handle issued at login. A cookie of
// the same name is accepted as a fallback for browser clients.
const HeaderSessionID = "X-Session-Id"

// Session resolves the caller's session and injects it into context. The
// bearer token never leaves the gateway towards the presentation layer;
// clients only ever hold the opaque session ID.
func Session(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderSessionID)
			if id == "" {
				if cookie, err := c.Cookie(HeaderSessionID); err == nil {
					id = cookie.Value
				}
			}
			if id == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			session, err := store.Load(c.Request().Context(), id)
			if err != nil {
				return err
			}

			c.Set("session_id", id)
			c.Set("token", session.Token)
			c.Set("subject", session.Subject)
			c.Set("session", session)

			return next(c)
		}
	}
}

// RequireRole gates a route group on a role marker from the session. This
// is a UX guard only: the backend independently enforces authorization on
// every forwarded request.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get("session").(domain.Session)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}
			if !session.HasRole(role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
