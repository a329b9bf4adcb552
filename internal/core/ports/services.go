package ports

import (
	"context"

	"github.com/smarthr/hr-gateway/internal/core/domain"
)

// LoginResult is the outcome of a successful, well-formed login: a stored
// session and the single navigation target derived from the token's roles.
type LoginResult struct {
	SessionID string
	Route     domain.Route
	Session   domain.Session
}

// SessionService implements the router/session gate: one backend login
// call, token decode, role dispatch, session persistence.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Logout deletes the session only; theme and transcript survive.
	Logout(ctx context.Context, sessionID string) error
}

// EmployeeService serves the employee self-service dashboard.
type EmployeeService interface {
	MyProfile(ctx context.Context, tok string) (*domain.EmployeeViewModel, error)
	RequestLeave(ctx context.Context, tok string, in NewLeaveRequestInput) (*domain.LeaveRequest, error)
}

// HRService serves the HR dashboard. Search operations drive the section
// state machine passed in by the caller: success fills the matching result
// slot, failure resets the dashboard to idle.
type HRService interface {
	SearchEmployee(ctx context.Context, tok, username string, state *domain.DashboardState) (*domain.EmployeeViewModel, error)
	SearchProjects(ctx context.Context, tok, name string, state *domain.DashboardState) ([]domain.Project, error)
	PendingLeaves(ctx context.Context, tok string, state *domain.DashboardState) ([]domain.LeaveRequest, error)
	ResolveLeave(ctx context.Context, tok string, id int64, status domain.LeaveStatus) (*domain.LeaveRequest, error)
	CreateEmployee(ctx context.Context, tok string, in NewEmployeeInput) error
	CreateEmployeeComplete(ctx context.Context, tok string, in NewEmployeeCompleteInput) error
	Departments(ctx context.Context, tok string) ([]domain.Department, error)
	Skills(ctx context.Context, tok string) ([]domain.SkillRef, error)
}

// AssistantService proxies chat messages and keeps the transcript.
type AssistantService interface {
	Chat(ctx context.Context, tok, subject, message string) (string, error)
	Transcript(ctx context.Context, subject string) ([]domain.ChatMessage, error)
}
