package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthr/hr-gateway/internal/api/metrics"
	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// SessionHandler exposes login and logout.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login authenticates against the HR backend and reports the dashboard
// route derived from the token's roles.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.sessions.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	switch result.Route {
	case domain.RouteHR:
		metrics.LoginsTotal.WithLabelValues("rrhh").Inc()
	default:
		metrics.LoginsTotal.WithLabelValues("employee").Inc()
	}

	return c.JSON(http.StatusOK, loginResponse{
		SessionID: result.SessionID,
		Route:     string(result.Route),
		Subject:   result.Session.Subject,
	})
}

// Logout destroys the caller's session. Theme and chat transcript survive.
//
// @Summary      Logout
// @Tags         session
// @Success      204  "session destroyed"
// @Failure      401  {object}  errorResponse
// @Router       /session/logout [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	sessionID, _, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Logout(c.Request().Context(), sessionID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, domain.ErrUnauthorizedRole):
		return "unauthorized_role"
	default:
		return "error"
	}
}
