package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSession extracts the values injected by the Session middleware and
// fast-fails before any service call: an empty token means the middleware
// did not run or the session lost its token.
func ctxSession(c echo.Context) (sessionID, tok, subject string, err error) {
	tok, _ = c.Get("token").(string)
	if tok == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	sessionID, _ = c.Get("session_id").(string)
	subject, _ = c.Get("subject").(string)
	return sessionID, tok, subject, nil
}
