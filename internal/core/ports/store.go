package ports

import (
	"context"

	"github.com/smarthr/hr-gateway/internal/core/domain"
)

// SessionStore persists the session (bearer token plus derived claims) and
// the per-session HR dashboard state. Loading an unknown or expired session
// yields domain.ErrSessionNotFound.
type SessionStore interface {
	Save(ctx context.Context, id string, s domain.Session) error
	Load(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error

	SaveDashboard(ctx context.Context, id string, state domain.DashboardState) error
	// LoadDashboard returns the idle state for sessions without saved state.
	LoadDashboard(ctx context.Context, id string) (domain.DashboardState, error)
}

// PreferenceStore persists the theme preference per subject. Unlike the
// session it is never cleared on logout and survives across sessions.
type PreferenceStore interface {
	SaveTheme(ctx context.Context, subject, theme string) error
	// Theme returns "light" for subjects without a stored preference.
	Theme(ctx context.Context, subject string) (string, error)
}

// TranscriptStore persists the assistant chat transcript per subject. Like
// the theme preference it survives logout.
type TranscriptStore interface {
	Append(ctx context.Context, subject string, msg domain.ChatMessage) error
	Transcript(ctx context.Context, subject string) ([]domain.ChatMessage, error)
}
