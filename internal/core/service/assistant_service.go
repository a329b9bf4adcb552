package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// AssistantService proxies the floating chat widget. The transcript is
// keyed by subject and persists across sessions; it is never cleared on
// logout.
type AssistantService struct {
	gateway    ports.AssistantGateway
	transcript ports.TranscriptStore
	log        zerolog.Logger
}

func NewAssistantService(gateway ports.AssistantGateway, transcript ports.TranscriptStore, log zerolog.Logger) *AssistantService {
	return &AssistantService{gateway: gateway, transcript: transcript, log: log}
}

// Chat records the user message, forwards it to the assistant backend and
// records the reply. The user's message is kept in the transcript even when
// the assistant call fails, mirroring what the widget shows on screen.
func (s *AssistantService) Chat(ctx context.Context, tok, subject, message string) (string, error) {
	if err := s.transcript.Append(ctx, subject, domain.ChatMessage{From: domain.ChatFromUser, Text: message}); err != nil {
		return "", err
	}

	reply, err := s.gateway.Chat(ctx, tok, message)
	if err != nil {
		s.log.Warn().Err(err).Str("subject", subject).Msg("assistant call failed")
		return "", domain.ErrAssistantUnavailable
	}

	if err := s.transcript.Append(ctx, subject, domain.ChatMessage{From: domain.ChatFromAssistant, Text: reply}); err != nil {
		return "", err
	}
	return reply, nil
}

// Transcript returns the stored conversation for the subject, oldest first.
func (s *AssistantService) Transcript(ctx context.Context, subject string) ([]domain.ChatMessage, error) {
	return s.transcript.Transcript(ctx, subject)
}
