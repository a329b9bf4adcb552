package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// AssistantHandler proxies the floating chat widget.
type AssistantHandler struct {
	assistant ports.AssistantService
}

func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Chat forwards one message to the assistant backend and returns its reply.
//
// @Summary      Send a chat message
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Message"
// @Success      200   {object}  chatResponse
// @Failure      503   {object}  errorResponse
// @Router       /assistant/chat [post]
func (h *AssistantHandler) Chat(c echo.Context) error {
	_, tok, subject, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.assistant.Chat(c.Request().Context(), tok, subject, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Response: reply})
}

// Transcript returns the caller's stored conversation, oldest first. The
// transcript survives logout; it belongs to the subject, not the session.
//
// @Summary      Chat transcript
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  transcriptResponse
// @Router       /assistant/transcript [get]
func (h *AssistantHandler) Transcript(c echo.Context) error {
	_, _, subject, err := ctxSession(c)
	if err != nil {
		return err
	}
	messages, err := h.assistant.Transcript(c.Request().Context(), subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transcriptResponse{Messages: messages})
}
