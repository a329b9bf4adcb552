package ports

import "context"

// NewLeaveRequestInput carries a leave request to be created. Status is not
// part of the input: freshly created requests are always PENDING.
type NewLeaveRequestInput struct {
	EmployeeID   int64
	EmployeeName string
	Type         string
	StartDate    string
	EndDate      string
	Comments     string
}

// NewEmployeeInput is the simple employee-creation payload.
type NewEmployeeInput struct {
	Name             string
	Surname          string
	Email            string
	Username         string
	Password         string
	Location         string
	HireDate         string
	DepartmentID     int64
	JobPositionTitle string
	Role             string
	WeeklyHours      int
	ProjectID        int64
}

// NewEmployeeCompleteInput additionally creates the contract, assignment and
// skills in a single backend call.
type NewEmployeeCompleteInput struct {
	NewEmployeeInput

	ContractType          string
	ContractStartDate     string
	ContractEndDate       string
	AssignmentJobPosition string
	SkillIDs              []int64
}

// HRBackend is the REST surface of the SmartHR backend as consumed by the
// gateway. Every method issues exactly one HTTP attempt; retries are the
// caller's concern. Implementations distinguish a transport failure
// (domain.ErrBackendUnreachable) from a non-2xx response
// (domain.ErrBackendRejected carrying the response body text).
type HRBackend interface {
	Login(ctx context.Context, username, password string) (string, error)
	FetchMyProfile(ctx context.Context, token string) (*RawProfile, error)
	FetchEmployeeProfile(ctx context.Context, token, username string) (*RawProfile, error)
	ListProjects(ctx context.Context, token, name string) ([]RawProject, error)
	ListDepartments(ctx context.Context, token string) ([]RawDepartment, error)
	ListSkills(ctx context.Context, token string) ([]RawSkillRef, error)
	CreateEmployee(ctx context.Context, token string, in NewEmployeeInput) error
	CreateEmployeeComplete(ctx context.Context, token string, in NewEmployeeCompleteInput) error
	CreateLeaveRequest(ctx context.Context, token string, in NewLeaveRequestInput) (*RawLeaveRequest, error)
	ListPendingLeaves(ctx context.Context, token string) ([]RawLeaveRequest, error)
	UpdateLeaveStatus(ctx context.Context, token string, id int64, status string) (*RawLeaveRequest, error)
}

// AssistantGateway proxies the floating assistant widget's chat calls.
type AssistantGateway interface {
	Chat(ctx context.Context, token, message string) (string, error)
}
