package handler

import "github.com/smarthr/hr-gateway/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Session ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	SessionID string `json:"session_id"`
	Route     string `json:"route"`
	Subject   string `json:"subject,omitempty"`
}

// --- Employee dashboard ---

type newLeaveRequestRequest struct {
	Type      string `json:"type"      validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate"   validate:"required"`
	Comments  string `json:"comments"`
}

// --- HR dashboard ---

type dashboardResponse struct {
	Section       string                    `json:"section"`
	Employee      *domain.EmployeeViewModel `json:"employee,omitempty"`
	Projects      []domain.Project          `json:"projects,omitempty"`
	PendingLeaves []domain.LeaveRequest     `json:"pendingLeaves,omitempty"`
}

type resolveLeaveRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

type newEmployeeRequest struct {
	Name             string `json:"name"             validate:"required"`
	Surname          string `json:"surname"          validate:"required"`
	Email            string `json:"email"            validate:"required,email"`
	Username         string `json:"username"         validate:"required"`
	Password         string `json:"password"         validate:"required"`
	Location         string `json:"location"         validate:"required"`
	HireDate         string `json:"hireDate"         validate:"required"`
	DepartmentID     int64  `json:"departmentId"     validate:"required"`
	JobPositionTitle string `json:"jobPositionTitle" validate:"required"`
	Role             string `json:"role"             validate:"required,oneof=ROLE_EMPLOYEE ROLE_RRHH"`
	WeeklyHours      int    `json:"weeklyHours"      validate:"required,min=1"`
	ProjectID        int64  `json:"projectId"`
}

type newEmployeeCompleteRequest struct {
	newEmployeeRequest

	ContractType          string  `json:"contractType"      validate:"required"`
	ContractStartDate     string  `json:"contractStartDate" validate:"required"`
	ContractEndDate       string  `json:"contractEndDate"`
	AssignmentJobPosition string  `json:"assignmentJobPosition"`
	SkillIDs              []int64 `json:"skillIds"`
}

// --- Assistant & preferences ---

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type transcriptResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

func toDashboardResponse(state domain.DashboardState) dashboardResponse {
	return dashboardResponse{
		Section:       string(state.Section),
		Employee:      state.Employee,
		Projects:      state.Projects,
		PendingLeaves: state.PendingLeaves,
	}
}
