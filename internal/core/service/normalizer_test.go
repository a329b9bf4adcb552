package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

func decodeProfile(t *testing.T, payload string) *ports.RawProfile {
	t.Helper()
	var raw ports.RawProfile
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	return &raw
}

func TestNormalizeProfile_BackendVariants(t *testing.T) {
	payload := `{
		"employee": {
			"id": 12, "name": "Ana Ruiz", "email": "ana@smarthr.example",
			"location": "Madrid", "hireDate": "2021-03-15",
			"departmentId": 3, "departmentName": "Engineering",
			"jobPositionId": 7, "jobPositionTitle": "Backend Developer"
		},
		"skills": [{"id": 1, "skillId": 5, "name": "Java", "level": 4}],
		"assignments": [{
			"id": 2, "projectId": 9, "projectCode": "ATL", "projectName": "Atlas",
			"roleOnProject": "Developer", "startDate": "2023-01-01", "endDate": null
		}],
		"contracts": [],
		"compensations": [],
		"performanceReviews": [{"id": 4, "reviewDate": "2024-06-30", "rating": "A", "comments": "solid"}],
		"leaveRequests": []
	}`

	vm, err := NormalizeProfile(decodeProfile(t, payload))
	if err != nil {
		t.Fatalf("NormalizeProfile returned error: %v", err)
	}

	if vm.Employee.Department.ID != 3 || vm.Employee.Department.Name != "Engineering" {
		t.Fatalf("flat department reference not collapsed: %+v", vm.Employee.Department)
	}
	if vm.Employee.JobPosition.Title != "Backend Developer" {
		t.Fatalf("flat job position reference not collapsed: %+v", vm.Employee.JobPosition)
	}
	if len(vm.Skills) != 1 || vm.Skills[0].Name != "Java" || vm.Skills[0].SkillID != 5 || vm.Skills[0].Level != 4 {
		t.Fatalf("unexpected skills: %+v", vm.Skills)
	}
	if len(vm.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(vm.Assignments))
	}
	a := vm.Assignments[0]
	if a.Project.ID != 9 || a.Project.Code != "ATL" || a.Project.Name != "Atlas" {
		t.Fatalf("flat project reference not collapsed: %+v", a.Project)
	}
	if a.JobPosition != "Developer" {
		t.Fatalf("roleOnProject not mapped: %q", a.JobPosition)
	}
	if a.EndDate != nil {
		t.Fatalf("open-ended assignment should keep a nil end date")
	}
	if len(vm.Reviews) != 1 || vm.Reviews[0].Date != "2024-06-30" {
		t.Fatalf("performanceReviews/reviewDate variant not mapped: %+v", vm.Reviews)
	}
	if vm.Contracts == nil || vm.Compensations == nil || vm.LeaveRequests == nil {
		t.Fatalf("empty collections must stay non-nil")
	}
}

func TestNormalizeProfile_NestedReferencesPreferred(t *testing.T) {
	payload := `{
		"employee": {
			"id": 12, "name": "Ana Ruiz",
			"departmentId": 99, "departmentName": "stale",
			"department": {"id": 3, "name": "Engineering"},
			"jobPosition": {"id": 7, "title": "Backend Developer"}
		},
		"assignments": [{
			"id": 2, "projectId": 99, "projectName": "stale",
			"project": {"id": 9, "code": "ATL", "name": "Atlas"},
			"jobPosition": "Lead", "roleOnProject": "stale",
			"startDate": "2023-01-01"
		}]
	}`

	vm, err := NormalizeProfile(decodeProfile(t, payload))
	if err != nil {
		t.Fatalf("NormalizeProfile returned error: %v", err)
	}
	if vm.Employee.Department.ID != 3 {
		t.Fatalf("nested department should win over flat fields: %+v", vm.Employee.Department)
	}
	if vm.Assignments[0].Project.ID != 9 {
		t.Fatalf("nested project should win over flat fields: %+v", vm.Assignments[0].Project)
	}
	if vm.Assignments[0].JobPosition != "Lead" {
		t.Fatalf("jobPosition should win over roleOnProject: %q", vm.Assignments[0].JobPosition)
	}
}

func TestNormalizeProfile_Incomplete(t *testing.T) {
	cases := []struct {
		name string
		raw  *ports.RawProfile
	}{
		{"nil profile", nil},
		{"missing id", decodeProfile(t, `{"employee":{"name":"Ana"}}`)},
		{"missing name", decodeProfile(t, `{"employee":{"id":12}}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NormalizeProfile(tc.raw); !errors.Is(err, domain.ErrIncompleteProfile) {
				t.Fatalf("expected ErrIncompleteProfile, got %v", err)
			}
		})
	}
}

// Canonical output fed back through the decoder must map to itself.
func TestNormalizeProfile_Idempotent(t *testing.T) {
	payload := `{
		"employee": {
			"id": 12, "name": "Ana Ruiz", "email": "ana@smarthr.example",
			"location": "Madrid", "hireDate": "2021-03-15",
			"departmentId": 3, "departmentName": "Engineering",
			"jobPositionId": 7, "jobPositionTitle": "Backend Developer"
		},
		"skills": [{"id": 1, "skillId": 5, "skillName": "Java", "level": 4}],
		"assignments": [{"id": 2, "projectId": 9, "projectCode": "ATL", "projectName": "Atlas", "roleOnProject": "Developer", "startDate": "2023-01-01"}],
		"performanceReviews": [{"id": 4, "reviewDate": "2024-06-30", "rating": "A"}],
		"leaveRequests": [{"id": 8, "employeeId": 12, "type": "VACATION", "status": "PENDING", "startDate": "2025-07-01", "endDate": "2025-07-10"}]
	}`

	first, err := NormalizeProfile(decodeProfile(t, payload))
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}

	canonical, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal canonical: %v", err)
	}
	second, err := NormalizeProfile(decodeProfile(t, string(canonical)))
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("normalizer is not idempotent:\nfirst:  %s\nsecond: %s", a, b)
	}
}

func TestNormalizeLeaveRequest_StatusKeptAsReceived(t *testing.T) {
	raw := ports.RawLeaveRequest{ID: 8, Type: "VACATION", Status: "REJECTED", StartDate: "2025-07-01", EndDate: "2025-07-10"}
	leave := NormalizeLeaveRequest(raw)
	if leave.Status != domain.LeaveRejected {
		t.Fatalf("status must pass through untouched, got %s", leave.Status)
	}
}

func TestNormalizeProjects_PreservesOrder(t *testing.T) {
	items := []ports.RawProject{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}
	projects := NormalizeProjects(items)
	if len(projects) != 2 || projects[0].ID != 2 || projects[1].ID != 1 {
		t.Fatalf("order not preserved: %+v", projects)
	}
}
