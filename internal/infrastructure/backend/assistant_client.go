package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// AssistantClient implements ports.AssistantGateway against the assistant
// backend's chat endpoint.
type AssistantClient struct {
	restClient
}

func NewAssistantClient(baseURL string, timeout time.Duration, log zerolog.Logger) *AssistantClient {
	return &AssistantClient{restClient: newRESTClient(baseURL, "assistant", timeout, log)}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat forwards one user message and returns the assistant's reply.
func (c *AssistantClient) Chat(ctx context.Context, tok, message string) (string, error) {
	var resp chatResponse
	if err := c.do(ctx, http.MethodPost, "/api/assistant/chat", nil, tok, chatRequest{Message: message}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
