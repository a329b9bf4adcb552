package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

func rawProfileFor(id int64, name string) *ports.RawProfile {
	return &ports.RawProfile{Employee: ports.RawEmployee{ID: id, Name: name}}
}

func TestHRService_SearchEmployee_Success(t *testing.T) {
	backend := &stubBackend{t: t, fetchEmployeeProfileFn: func(_ context.Context, _, username string) (*ports.RawProfile, error) {
		if username != "jruiz" {
			t.Fatalf("unexpected username: %s", username)
		}
		return rawProfileFor(12, "Juan Ruiz"), nil
	}}
	svc := NewHRService(backend, zerolog.Nop())

	state := domain.NewDashboardState()
	vm, err := svc.SearchEmployee(context.Background(), "tok", "jruiz", &state)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if vm.Employee.Name != "Juan Ruiz" {
		t.Fatalf("unexpected result: %+v", vm.Employee)
	}
	if state.Section != domain.SectionEmployee || state.Employee == nil {
		t.Fatalf("dashboard not moved to showing-employee: %+v", state)
	}
}

func TestHRService_SearchEmployee_NotFoundResetsDashboard(t *testing.T) {
	backend := &stubBackend{t: t, fetchEmployeeProfileFn: func(context.Context, string, string) (*ports.RawProfile, error) {
		return nil, domain.ErrEmployeeNotFound
	}}
	svc := NewHRService(backend, zerolog.Nop())

	// Start from a populated dashboard: the stale result must not survive a
	// failed search.
	state := domain.NewDashboardState()
	state.ShowProjects([]domain.Project{{ID: 1, Name: "Atlas"}})

	_, err := svc.SearchEmployee(context.Background(), "tok", "nobody", &state)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if state.Section != domain.SectionIdle || state.Projects != nil {
		t.Fatalf("dashboard should be idle after a failed search: %+v", state)
	}
}

func TestHRService_SearchEmployee_IncompletePayloadResetsDashboard(t *testing.T) {
	backend := &stubBackend{t: t, fetchEmployeeProfileFn: func(context.Context, string, string) (*ports.RawProfile, error) {
		return &ports.RawProfile{}, nil
	}}
	svc := NewHRService(backend, zerolog.Nop())

	state := domain.NewDashboardState()
	state.ShowEmployee(domain.EmployeeViewModel{Employee: domain.Employee{ID: 1, Name: "old"}})

	_, err := svc.SearchEmployee(context.Background(), "tok", "jruiz", &state)
	if !errors.Is(err, domain.ErrIncompleteProfile) {
		t.Fatalf("expected ErrIncompleteProfile, got %v", err)
	}
	if state.Section != domain.SectionIdle || state.Employee != nil {
		t.Fatalf("stale employee lingered after failure: %+v", state)
	}
}

func TestHRService_SearchProjects_EmptyListingIsAResult(t *testing.T) {
	backend := &stubBackend{t: t, listProjectsFn: func(_ context.Context, _, name string) ([]ports.RawProject, error) {
		if name != "atlas" {
			t.Fatalf("unexpected filter: %s", name)
		}
		return []ports.RawProject{}, nil
	}}
	svc := NewHRService(backend, zerolog.Nop())

	state := domain.NewDashboardState()
	projects, err := svc.SearchProjects(context.Background(), "tok", "atlas", &state)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("expected empty listing, got %+v", projects)
	}
	if state.Section != domain.SectionProjects {
		t.Fatalf("an empty listing still moves to showing-projects, got %s", state.Section)
	}
}

func TestHRService_PendingLeaves_RenderedAsReceived(t *testing.T) {
	backend := &stubBackend{t: t, listPendingLeavesFn: func(context.Context, string) ([]ports.RawLeaveRequest, error) {
		// The backend pre-filters; whatever it sends is shown untouched,
		// even an entry with an unexpected status.
		return []ports.RawLeaveRequest{
			{ID: 1, EmployeeName: "Ana", Status: "PENDING"},
			{ID: 2, EmployeeName: "Luis", Status: "APPROVED"},
		}, nil
	}}
	svc := NewHRService(backend, zerolog.Nop())

	state := domain.NewDashboardState()
	leaves, err := svc.PendingLeaves(context.Background(), "tok", &state)
	if err != nil {
		t.Fatalf("pending leaves failed: %v", err)
	}
	if len(leaves) != 2 || leaves[1].Status != domain.LeaveApproved {
		t.Fatalf("entries must not be re-filtered: %+v", leaves)
	}
	if state.Section != domain.SectionPendingLeaves || len(state.PendingLeaves) != 2 {
		t.Fatalf("dashboard not moved to showing-pending-leaves: %+v", state)
	}
}

func TestHRService_PendingLeaves_FailureResetsDashboard(t *testing.T) {
	backend := &stubBackend{t: t, listPendingLeavesFn: func(context.Context, string) ([]ports.RawLeaveRequest, error) {
		return nil, domain.ErrBackendUnreachable
	}}
	svc := NewHRService(backend, zerolog.Nop())

	state := domain.NewDashboardState()
	state.ShowEmployee(domain.EmployeeViewModel{Employee: domain.Employee{ID: 1, Name: "old"}})

	if _, err := svc.PendingLeaves(context.Background(), "tok", &state); !errors.Is(err, domain.ErrBackendUnreachable) {
		t.Fatalf("expected ErrBackendUnreachable, got %v", err)
	}
	if state.Section != domain.SectionIdle {
		t.Fatalf("expected idle, got %s", state.Section)
	}
}

func TestHRService_ResolveLeave(t *testing.T) {
	backend := &stubBackend{t: t, updateLeaveStatusFn: func(_ context.Context, _ string, id int64, status string) (*ports.RawLeaveRequest, error) {
		if id != 42 || status != "APPROVED" {
			t.Fatalf("unexpected args: %d %s", id, status)
		}
		return &ports.RawLeaveRequest{ID: 42, Status: status}, nil
	}}
	svc := NewHRService(backend, zerolog.Nop())

	leave, err := svc.ResolveLeave(context.Background(), "tok", 42, domain.LeaveApproved)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if leave.Status != domain.LeaveApproved {
		t.Fatalf("unexpected status: %s", leave.Status)
	}
}

func TestHRService_ResolveLeave_RejectsPendingTarget(t *testing.T) {
	svc := NewHRService(&stubBackend{t: t}, zerolog.Nop())

	if _, err := svc.ResolveLeave(context.Background(), "tok", 42, domain.LeavePending); err == nil {
		t.Fatalf("PENDING is not a valid resolution target")
	}
}
