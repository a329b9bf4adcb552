package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// HRService serves the HR dashboard. Search operations drive the section
// state machine: at any instant at most one of the employee, project and
// pending-leaves result slots is populated. A failed search resets the
// dashboard to idle so no stale result lingers behind an error message.
type HRService struct {
	backend ports.HRBackend
	log     zerolog.Logger
}

func NewHRService(backend ports.HRBackend, log zerolog.Logger) *HRService {
	return &HRService{backend: backend, log: log}
}

// SearchEmployee looks up a full employee aggregate by username and, on
// success, moves the dashboard to showing-employee.
func (s *HRService) SearchEmployee(ctx context.Context, tok, username string, state *domain.DashboardState) (*domain.EmployeeViewModel, error) {
	raw, err := s.backend.FetchEmployeeProfile(ctx, tok, username)
	if err != nil {
		state.Reset()
		return nil, err
	}
	vm, err := NormalizeProfile(raw)
	if err != nil {
		state.Reset()
		return nil, err
	}
	state.ShowEmployee(*vm)
	return vm, nil
}

// SearchProjects lists projects (optionally filtered by name) and moves the
// dashboard to showing-projects. An empty listing is a result, not a
// failure.
func (s *HRService) SearchProjects(ctx context.Context, tok, name string, state *domain.DashboardState) ([]domain.Project, error) {
	raw, err := s.backend.ListProjects(ctx, tok, name)
	if err != nil {
		state.Reset()
		return nil, err
	}
	projects := NormalizeProjects(raw)
	state.ShowProjects(projects)
	return projects, nil
}

// PendingLeaves lists pending leave requests across all employees and moves
// the dashboard to showing-pending-leaves. Entries are rendered exactly as
// received; the backend is expected to pre-filter by status.
func (s *HRService) PendingLeaves(ctx context.Context, tok string, state *domain.DashboardState) ([]domain.LeaveRequest, error) {
	raw, err := s.backend.ListPendingLeaves(ctx, tok)
	if err != nil {
		state.Reset()
		return nil, err
	}
	leaves := make([]domain.LeaveRequest, len(raw))
	for i, l := range raw {
		leaves[i] = NormalizeLeaveRequest(l)
	}
	state.ShowPendingLeaves(leaves)
	return leaves, nil
}

// ResolveLeave approves or rejects a leave request.
func (s *HRService) ResolveLeave(ctx context.Context, tok string, id int64, status domain.LeaveStatus) (*domain.LeaveRequest, error) {
	if status != domain.LeaveApproved && status != domain.LeaveRejected {
		return nil, domain.ErrBackendRejected
	}
	updated, err := s.backend.UpdateLeaveStatus(ctx, tok, id, string(status))
	if err != nil {
		return nil, err
	}
	leave := NormalizeLeaveRequest(*updated)
	s.log.Info().Int64("leave_id", id).Str("status", string(status)).Msg("leave request resolved")
	return &leave, nil
}

// CreateEmployee creates a bare employee record.
func (s *HRService) CreateEmployee(ctx context.Context, tok string, in ports.NewEmployeeInput) error {
	return s.backend.CreateEmployee(ctx, tok, in)
}

// CreateEmployeeComplete creates an employee together with their contract,
// assignment and skills in a single backend call.
func (s *HRService) CreateEmployeeComplete(ctx context.Context, tok string, in ports.NewEmployeeCompleteInput) error {
	return s.backend.CreateEmployeeComplete(ctx, tok, in)
}

// Departments returns the department reference list for forms.
func (s *HRService) Departments(ctx context.Context, tok string) ([]domain.Department, error) {
	raw, err := s.backend.ListDepartments(ctx, tok)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Department, len(raw))
	for i, d := range raw {
		out[i] = domain.Department{ID: d.ID, Name: d.Name, Description: d.Description}
	}
	return out, nil
}

// Skills returns the skills reference list for forms.
func (s *HRService) Skills(ctx context.Context, tok string) ([]domain.SkillRef, error) {
	raw, err := s.backend.ListSkills(ctx, tok)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SkillRef, len(raw))
	for i, sk := range raw {
		out[i] = domain.SkillRef{ID: sk.ID, Name: sk.Name, Description: sk.Description}
	}
	return out, nil
}
