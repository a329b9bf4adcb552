package domain

import "testing"

func TestDashboardState_SlotsAreMutuallyExclusive(t *testing.T) {
	state := NewDashboardState()
	if state.Section != SectionIdle {
		t.Fatalf("expected idle, got %s", state.Section)
	}

	state.ShowEmployee(EmployeeViewModel{Employee: Employee{ID: 1, Name: "Ana"}})
	if state.Section != SectionEmployee || state.Employee == nil {
		t.Fatalf("expected showing-employee with result, got %+v", state)
	}

	state.ShowProjects([]Project{{ID: 7, Name: "Atlas"}})
	if state.Section != SectionProjects {
		t.Fatalf("expected showing-projects, got %s", state.Section)
	}
	if state.Employee != nil {
		t.Fatalf("employee slot should be cleared by a project search")
	}

	state.ShowPendingLeaves([]LeaveRequest{{ID: 3, Status: LeavePending}})
	if state.Section != SectionPendingLeaves {
		t.Fatalf("expected showing-pending-leaves, got %s", state.Section)
	}
	if state.Projects != nil {
		t.Fatalf("projects slot should be cleared by the pending-leaves action")
	}
}

func TestDashboardState_ResetClearsEverything(t *testing.T) {
	state := NewDashboardState()
	state.ShowEmployee(EmployeeViewModel{Employee: Employee{ID: 1, Name: "Ana"}})

	state.Reset()
	if state.Section != SectionIdle {
		t.Fatalf("expected idle after reset, got %s", state.Section)
	}
	if state.Employee != nil || state.Projects != nil || state.PendingLeaves != nil {
		t.Fatalf("expected all slots empty after reset, got %+v", state)
	}
}

func TestDashboardState_EmptyProjectListIsAResult(t *testing.T) {
	state := NewDashboardState()
	state.ShowProjects([]Project{})
	if state.Section != SectionProjects {
		t.Fatalf("an empty listing is still a result, got %s", state.Section)
	}
}
