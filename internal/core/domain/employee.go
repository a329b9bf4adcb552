package domain

// LeaveStatus represents the lifecycle state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// Department is a reference entity owned by the backend.
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// JobPosition is a reference entity owned by the backend.
type JobPosition struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Employee is the identity block of the view model.
type Employee struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Location    string      `json:"location"`
	HireDate    string      `json:"hireDate"`
	Department  Department  `json:"department"`
	JobPosition JobPosition `json:"jobPosition"`
}

// Skill is a skill the employee holds, with a 1–5 proficiency level.
type Skill struct {
	ID      int64  `json:"id"`
	SkillID int64  `json:"skillId"`
	Name    string `json:"name"`
	Level   int    `json:"level"`
}

// SkillRef is an entry of the skills reference list used by forms.
type SkillRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Project is the project reference carried inside an assignment.
type Project struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Client    string `json:"client,omitempty"`
	Ubication string `json:"ubication,omitempty"`
}

// Assignment links the employee to a project. A nil EndDate means the
// assignment is ongoing.
type Assignment struct {
	ID          int64   `json:"id"`
	Project     Project `json:"project"`
	JobPosition string  `json:"jobPosition"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
}

// Contract is an employment contract. A nil EndDate means the contract is
// still in force.
type Contract struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	WeeklyHours int     `json:"weeklyHours"`
}

// Compensation is a salary record effective from a given date.
type Compensation struct {
	ID            int64   `json:"id"`
	BaseSalary    float64 `json:"baseSalary"`
	Bonus         float64 `json:"bonus"`
	EffectiveFrom string  `json:"effectiveFrom"`
}

// Review is a performance review entry.
type Review struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Rating   string `json:"rating"`
	Comments string `json:"comments,omitempty"`
}

// LeaveRequest is an absence request and its approval state.
type LeaveRequest struct {
	ID           int64       `json:"id"`
	EmployeeID   int64       `json:"employeeId,omitempty"`
	EmployeeName string      `json:"employeeName,omitempty"`
	Type         string      `json:"type"`
	Status       LeaveStatus `json:"status"`
	StartDate    string      `json:"startDate"`
	EndDate      string      `json:"endDate"`
	Comments     string      `json:"comments,omitempty"`
}

// EmployeeViewModel is the canonical aggregate every dashboard consumes.
// The backend returns this data under several field-name variants and
// nesting styles; the normalizer maps all of them onto this single shape so
// presentation code never branches on source shape. Each fetch produces a
// fresh snapshot; the value is never mutated in place.
type EmployeeViewModel struct {
	Employee      Employee       `json:"employee"`
	Skills        []Skill        `json:"skills"`
	Assignments   []Assignment   `json:"assignments"`
	Contracts     []Contract     `json:"contracts"`
	Compensations []Compensation `json:"compensations"`
	Reviews       []Review       `json:"reviews"`
	LeaveRequests []LeaveRequest `json:"leaveRequests"`
}
