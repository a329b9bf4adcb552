package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// PreferencesHandler reads and writes per-subject presentation preferences.
type PreferencesHandler struct {
	preferences ports.PreferenceStore
}

func NewPreferencesHandler(preferences ports.PreferenceStore) *PreferencesHandler {
	return &PreferencesHandler{preferences: preferences}
}

// Theme returns the stored theme preference, defaulting to light.
//
// @Summary      Theme preference
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /preferences/theme [get]
func (h *PreferencesHandler) Theme(c echo.Context) error {
	_, _, subject, err := ctxSession(c)
	if err != nil {
		return err
	}
	theme, err := h.preferences.Theme(c.Request().Context(), subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}

// SaveTheme stores the theme preference. It persists across sessions and is
// not cleared on logout.
//
// @Summary      Save theme preference
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body      themeRequest  true  "Theme"
// @Success      200   {object}  themeResponse
// @Failure      400   {object}  errorResponse
// @Router       /preferences/theme [put]
func (h *PreferencesHandler) SaveTheme(c echo.Context) error {
	_, _, subject, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.preferences.SaveTheme(c.Request().Context(), subject, req.Theme); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: req.Theme})
}
