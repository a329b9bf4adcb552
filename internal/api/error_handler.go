package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smarthr/hr-gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the gateway's error taxonomy to deterministic HTTP status codes.
//   - Surfaces the backend's own detail text on rejected requests instead
//     of swallowing it.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrUnauthorizedRole):
		return http.StatusForbidden, "unauthorized role"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "session expired or unknown"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, "employee not found"
	case errors.Is(err, domain.ErrIncompleteProfile):
		return http.StatusBadGateway, "backend returned an incomplete employee payload"
	case errors.Is(err, domain.ErrAssistantUnavailable):
		return http.StatusServiceUnavailable, "assistant unavailable"
	case errors.Is(err, domain.ErrBackendUnreachable):
		return http.StatusBadGateway, "backend unreachable"
	case errors.Is(err, domain.ErrBackendRejected):
		// Pass the backend's own status and detail through when present.
		var be *domain.BackendError
		if errors.As(err, &be) {
			msg := be.Detail
			if msg == "" {
				msg = "request rejected by backend"
			}
			return be.Status, msg
		}
		return http.StatusBadGateway, "request rejected by backend"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
