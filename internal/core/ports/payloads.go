package ports

import (
	"bytes"
	"encoding/json"
)

// List accepts a collection that the backend may return either as a bare
// JSON array or wrapped in a Spring-style pagination envelope
// ({"content":[...]}). It always marshals back out as a bare array, so the
// envelope never leaks past this layer. Element order is preserved.
type List[T any] struct {
	Items []T
}

func (l *List[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		l.Items = nil
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &l.Items)
	}
	var envelope struct {
		Content []T `json:"content"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return err
	}
	l.Items = envelope.Content
	return nil
}

func (l List[T]) MarshalJSON() ([]byte, error) {
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// --- Raw backend payloads ---
//
// The backend exposes the same data under several field-name variants and
// nesting styles depending on the endpoint. The Raw* types accept every
// observed variant side by side; the normalizer collapses them into the
// canonical domain.EmployeeViewModel.

type RawDepartment struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type RawJobPosition struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type RawEmployee struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	HireDate string `json:"hireDate"`

	// Flat references.
	DepartmentID     int64  `json:"departmentId,omitempty"`
	DepartmentName   string `json:"departmentName,omitempty"`
	JobPositionID    int64  `json:"jobPositionId,omitempty"`
	JobPositionTitle string `json:"jobPositionTitle,omitempty"`

	// Nested references, preferred when present.
	Department  *RawDepartment  `json:"department,omitempty"`
	JobPosition *RawJobPosition `json:"jobPosition,omitempty"`
}

type RawSkill struct {
	ID      int64 `json:"id"`
	SkillID int64 `json:"skillId"`
	Level   int   `json:"level"`

	SkillName string `json:"skillName,omitempty"`
	Name      string `json:"name,omitempty"`
}

type RawProject struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Client    string `json:"client,omitempty"`
	Ubication string `json:"ubication,omitempty"`
}

type RawAssignment struct {
	ID        int64   `json:"id"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate,omitempty"`

	// Role on the project travels under either key.
	JobPosition   string `json:"jobPosition,omitempty"`
	RoleOnProject string `json:"roleOnProject,omitempty"`

	// Flat project reference.
	ProjectID   int64  `json:"projectId,omitempty"`
	ProjectCode string `json:"projectCode,omitempty"`
	ProjectName string `json:"projectName,omitempty"`

	// Nested project reference, preferred when present.
	Project *RawProject `json:"project,omitempty"`
}

type RawContract struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	WeeklyHours int     `json:"weeklyHours"`
}

type RawCompensation struct {
	ID            int64   `json:"id"`
	BaseSalary    float64 `json:"baseSalary"`
	Bonus         float64 `json:"bonus"`
	EffectiveFrom string  `json:"effectiveFrom"`
}

type RawReview struct {
	ID       int64  `json:"id"`
	Rating   string `json:"rating"`
	Comments string `json:"comments,omitempty"`

	ReviewDate string `json:"reviewDate,omitempty"`
	Date       string `json:"date,omitempty"`
}

type RawLeaveRequest struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employeeId,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Comments     string `json:"comments,omitempty"`
}

type RawSkillRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RawProfile is the full employee aggregate as returned by
// GET /api/employees/me/full and the by-username variant. Reviews appear as
// "performanceReviews" on backend responses and as "reviews" once
// canonical; both keys are accepted.
type RawProfile struct {
	Employee      RawEmployee           `json:"employee"`
	Skills        List[RawSkill]        `json:"skills"`
	Assignments   List[RawAssignment]   `json:"assignments"`
	Contracts     List[RawContract]     `json:"contracts"`
	Compensations List[RawCompensation] `json:"compensations"`
	Performance   List[RawReview]       `json:"performanceReviews"`
	Reviews       List[RawReview]       `json:"reviews"`
	LeaveRequests List[RawLeaveRequest] `json:"leaveRequests"`
}
