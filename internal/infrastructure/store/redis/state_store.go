package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smarthr/hr-gateway/internal/core/domain"
)

const defaultTheme = "light"

// StateStore keeps all gateway-side client state in Redis. Sessions and
// dashboard state expire with the session TTL; theme preference and the
// assistant transcript are keyed by subject and never expire; logout
// leaves them untouched.
//
// Key layout:
//
//	session:<id>    JSON-encoded domain.Session
//	dashboard:<id>  JSON-encoded domain.DashboardState
//	theme:<subject> plain string
//	chat:<subject>  list of JSON-encoded domain.ChatMessage
type StateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStateStore(client *redis.Client, sessionTTL time.Duration) *StateStore {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &StateStore{client: client, ttl: sessionTTL}
}

func (s *StateStore) Save(ctx context.Context, id string, session domain.Session) error {
	encoded, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(id), encoded, s.ttl).Err()
}

func (s *StateStore) Load(ctx context.Context, id string) (domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

// Delete removes the session token and its dashboard state. Theme and
// transcript keys are keyed by subject and deliberately not touched here.
func (s *StateStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id), dashboardKey(id)).Err()
}

func (s *StateStore) SaveDashboard(ctx context.Context, id string, state domain.DashboardState) error {
	encoded, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode dashboard state: %w", err)
	}
	return s.client.Set(ctx, dashboardKey(id), encoded, s.ttl).Err()
}

func (s *StateStore) LoadDashboard(ctx context.Context, id string) (domain.DashboardState, error) {
	raw, err := s.client.Get(ctx, dashboardKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewDashboardState(), nil
	}
	if err != nil {
		return domain.DashboardState{}, fmt.Errorf("load dashboard state: %w", err)
	}
	var state domain.DashboardState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.DashboardState{}, fmt.Errorf("decode dashboard state: %w", err)
	}
	return state, nil
}

func (s *StateStore) SaveTheme(ctx context.Context, subject, theme string) error {
	return s.client.Set(ctx, themeKey(subject), theme, 0).Err()
}

func (s *StateStore) Theme(ctx context.Context, subject string) (string, error) {
	theme, err := s.client.Get(ctx, themeKey(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return defaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	return theme, nil
}

func (s *StateStore) Append(ctx context.Context, subject string, msg domain.ChatMessage) error {
	encoded, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode chat message: %w", err)
	}
	return s.client.RPush(ctx, chatKey(subject), encoded).Err()
}

func (s *StateStore) Transcript(ctx context.Context, subject string) ([]domain.ChatMessage, error) {
	raw, err := s.client.LRange(ctx, chatKey(subject), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	out := make([]domain.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg domain.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("decode chat message: %w", err)
		}
		out = append(out, msg)
	}
	return out, nil
}

func sessionKey(id string) string    { return "session:" + id }
func dashboardKey(id string) string  { return "dashboard:" + id }
func themeKey(subject string) string { return "theme:" + subject }
func chatKey(subject string) string  { return "chat:" + subject }
