package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// HRClient implements ports.HRBackend against the SmartHR REST API.
type HRClient struct {
	restClient
}

func NewHRClient(baseURL string, timeout time.Duration, log zerolog.Logger) *HRClient {
	return &HRClient{restClient: newRESTClient(baseURL, "hr", timeout, log)}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. No token is attached to
// this call.
func (c *HRClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// FetchMyProfile returns the caller's full employee aggregate.
func (c *HRClient) FetchMyProfile(ctx context.Context, tok string) (*ports.RawProfile, error) {
	var raw ports.RawProfile
	if err := c.do(ctx, http.MethodGet, "/api/employees/me/full", nil, tok, nil, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// FetchEmployeeProfile returns another employee's full aggregate by
// username. A 404-class response maps to domain.ErrEmployeeNotFound.
func (c *HRClient) FetchEmployeeProfile(ctx context.Context, tok, username string) (*ports.RawProfile, error) {
	query := url.Values{"username": {username}}
	var raw ports.RawProfile
	if err := c.do(ctx, http.MethodGet, "/api/employees/user", query, tok, nil, &raw); err != nil {
		var be *domain.BackendError
		if errors.As(err, &be) && be.Status == http.StatusNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &raw, nil
}

// ListProjects lists projects, optionally filtered by name. The backend may
// paginate; the envelope is unwrapped here.
func (c *HRClient) ListProjects(ctx context.Context, tok, name string) ([]ports.RawProject, error) {
	var query url.Values
	if name != "" {
		query = url.Values{"name": {name}}
	}
	var list ports.List[ports.RawProject]
	if err := c.do(ctx, http.MethodGet, "/api/projects", query, tok, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// ListDepartments returns the department reference list.
func (c *HRClient) ListDepartments(ctx context.Context, tok string) ([]ports.RawDepartment, error) {
	var list ports.List[ports.RawDepartment]
	if err := c.do(ctx, http.MethodGet, "/api/departments", nil, tok, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// ListSkills returns the skills reference list.
func (c *HRClient) ListSkills(ctx context.Context, tok string) ([]ports.RawSkillRef, error) {
	var list ports.List[ports.RawSkillRef]
	if err := c.do(ctx, http.MethodGet, "/api/skills", nil, tok, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

type newEmployeeRequest struct {
	Name             string `json:"name"`
	Surname          string `json:"surname"`
	Email            string `json:"email"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	Location         string `json:"location"`
	HireDate         string `json:"hireDate"`
	DepartmentID     int64  `json:"departmentId"`
	JobPositionTitle string `json:"jobPositionTitle"`
	Role             string `json:"role"`
	WeeklyHours      int    `json:"weeklyHours"`
	ProjectID        int64  `json:"projectId,omitempty"`
}

type newEmployeeCompleteRequest struct {
	newEmployeeRequest

	ContractType          string  `json:"contractType"`
	ContractStartDate     string  `json:"contractStartDate"`
	ContractEndDate       string  `json:"contractEndDate,omitempty"`
	AssignmentJobPosition string  `json:"assignmentJobPosition,omitempty"`
	SkillIDs              []int64 `json:"skillIds,omitempty"`
}

func toNewEmployeeRequest(in ports.NewEmployeeInput) newEmployeeRequest {
	return newEmployeeRequest{
		Name:             in.Name,
		Surname:          in.Surname,
		Email:            in.Email,
		Username:         in.Username,
		Password:         in.Password,
		Location:         in.Location,
		HireDate:         in.HireDate,
		DepartmentID:     in.DepartmentID,
		JobPositionTitle: in.JobPositionTitle,
		Role:             in.Role,
		WeeklyHours:      in.WeeklyHours,
		ProjectID:        in.ProjectID,
	}
}

// CreateEmployee creates a bare employee record.
func (c *HRClient) CreateEmployee(ctx context.Context, tok string, in ports.NewEmployeeInput) error {
	return c.do(ctx, http.MethodPost, "/api/employees", nil, tok, toNewEmployeeRequest(in), nil)
}

// CreateEmployeeComplete creates an employee with contract, assignment and
// skills in one call.
func (c *HRClient) CreateEmployeeComplete(ctx context.Context, tok string, in ports.NewEmployeeCompleteInput) error {
	req := newEmployeeCompleteRequest{
		newEmployeeRequest:    toNewEmployeeRequest(in.NewEmployeeInput),
		ContractType:          in.ContractType,
		ContractStartDate:     in.ContractStartDate,
		ContractEndDate:       in.ContractEndDate,
		AssignmentJobPosition: in.AssignmentJobPosition,
		SkillIDs:              in.SkillIDs,
	}
	return c.do(ctx, http.MethodPost, "/api/employees/complete", nil, tok, req, nil)
}

type newLeaveRequest struct {
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Comments     string `json:"comments,omitempty"`
}

// CreateLeaveRequest submits a new leave request, always PENDING.
func (c *HRClient) CreateLeaveRequest(ctx context.Context, tok string, in ports.NewLeaveRequestInput) (*ports.RawLeaveRequest, error) {
	req := newLeaveRequest{
		EmployeeID:   in.EmployeeID,
		EmployeeName: in.EmployeeName,
		Type:         in.Type,
		Status:       string(domain.LeavePending),
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Comments:     in.Comments,
	}
	var created ports.RawLeaveRequest
	if err := c.do(ctx, http.MethodPost, "/api/leave-requests", nil, tok, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListPendingLeaves lists pending leave requests across all employees.
func (c *HRClient) ListPendingLeaves(ctx context.Context, tok string) ([]ports.RawLeaveRequest, error) {
	var list ports.List[ports.RawLeaveRequest]
	if err := c.do(ctx, http.MethodGet, "/api/leave-requests/pending", nil, tok, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// UpdateLeaveStatus approves or rejects a leave request via the backend's
// status endpoint.
func (c *HRClient) UpdateLeaveStatus(ctx context.Context, tok string, id int64, status string) (*ports.RawLeaveRequest, error) {
	path := "/api/leave-requests/" + strconv.FormatInt(id, 10) + "/status"
	query := url.Values{"status": {status}}
	var updated ports.RawLeaveRequest
	if err := c.do(ctx, http.MethodPatch, path, query, tok, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
