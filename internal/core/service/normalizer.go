package service

import (
	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// NormalizeProfile collapses a raw employee aggregate into the canonical
// view model. It is a pure, element-wise, order-preserving mapping: no
// entry is dropped or reordered, and already-canonical input maps to
// itself. The only failure is a missing employee id or name, which yields
// domain.ErrIncompleteProfile rather than a partial view model.
func NormalizeProfile(raw *ports.RawProfile) (*domain.EmployeeViewModel, error) {
	if raw == nil || raw.Employee.ID == 0 || raw.Employee.Name == "" {
		return nil, domain.ErrIncompleteProfile
	}

	reviews := raw.Performance.Items
	if len(reviews) == 0 {
		reviews = raw.Reviews.Items
	}

	vm := &domain.EmployeeViewModel{
		Employee:      normalizeEmployee(raw.Employee),
		Skills:        normalizeSkills(raw.Skills.Items),
		Assignments:   normalizeAssignments(raw.Assignments.Items),
		Contracts:     normalizeContracts(raw.Contracts.Items),
		Compensations: normalizeCompensations(raw.Compensations.Items),
		Reviews:       normalizeReviews(reviews),
		LeaveRequests: normalizeLeaveRequests(raw.LeaveRequests.Items),
	}
	return vm, nil
}

func normalizeEmployee(e ports.RawEmployee) domain.Employee {
	out := domain.Employee{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		Location: e.Location,
		HireDate: e.HireDate,
		Department: domain.Department{
			ID:   e.DepartmentID,
			Name: e.DepartmentName,
		},
		JobPosition: domain.JobPosition{
			ID:    e.JobPositionID,
			Title: e.JobPositionTitle,
		},
	}
	if e.Department != nil {
		out.Department = domain.Department{ID: e.Department.ID, Name: e.Department.Name}
	}
	if e.JobPosition != nil {
		out.JobPosition = domain.JobPosition{ID: e.JobPosition.ID, Title: e.JobPosition.Title}
	}
	return out
}

func normalizeSkills(items []ports.RawSkill) []domain.Skill {
	out := make([]domain.Skill, len(items))
	for i, s := range items {
		name := s.Name
		if name == "" {
			name = s.SkillName
		}
		out[i] = domain.Skill{ID: s.ID, SkillID: s.SkillID, Name: name, Level: s.Level}
	}
	return out
}

// NormalizeProject maps a raw project to its canonical shape.
func NormalizeProject(p ports.RawProject) domain.Project {
	return domain.Project{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Client:    p.Client,
		Ubication: p.Ubication,
	}
}

// NormalizeProjects maps a raw project list element-wise, preserving order.
func NormalizeProjects(items []ports.RawProject) []domain.Project {
	out := make([]domain.Project, len(items))
	for i, p := range items {
		out[i] = NormalizeProject(p)
	}
	return out
}

func normalizeAssignments(items []ports.RawAssignment) []domain.Assignment {
	out := make([]domain.Assignment, len(items))
	for i, a := range items {
		project := domain.Project{
			ID:   a.ProjectID,
			Code: a.ProjectCode,
			Name: a.ProjectName,
		}
		if a.Project != nil {
			project = NormalizeProject(*a.Project)
		}
		position := a.JobPosition
		if position == "" {
			position = a.RoleOnProject
		}
		out[i] = domain.Assignment{
			ID:          a.ID,
			Project:     project,
			JobPosition: position,
			StartDate:   a.StartDate,
			EndDate:     a.EndDate,
		}
	}
	return out
}

func normalizeContracts(items []ports.RawContract) []domain.Contract {
	out := make([]domain.Contract, len(items))
	for i, c := range items {
		out[i] = domain.Contract{
			ID:          c.ID,
			Type:        c.Type,
			StartDate:   c.StartDate,
			EndDate:     c.EndDate,
			WeeklyHours: c.WeeklyHours,
		}
	}
	return out
}

func normalizeCompensations(items []ports.RawCompensation) []domain.Compensation {
	out := make([]domain.Compensation, len(items))
	for i, c := range items {
		out[i] = domain.Compensation{
			ID:            c.ID,
			BaseSalary:    c.BaseSalary,
			Bonus:         c.Bonus,
			EffectiveFrom: c.EffectiveFrom,
		}
	}
	return out
}

func normalizeReviews(items []ports.RawReview) []domain.Review {
	out := make([]domain.Review, len(items))
	for i, r := range items {
		date := r.Date
		if date == "" {
			date = r.ReviewDate
		}
		out[i] = domain.Review{ID: r.ID, Date: date, Rating: r.Rating, Comments: r.Comments}
	}
	return out
}

// NormalizeLeaveRequest maps a raw leave request as-is. Statuses are kept
// exactly as received; filtering (e.g. pending-only views) is the
// backend's job, never the gateway's.
func NormalizeLeaveRequest(l ports.RawLeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Type:         l.Type,
		Status:       domain.LeaveStatus(l.Status),
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
		Comments:     l.Comments,
	}
}

func normalizeLeaveRequests(items []ports.RawLeaveRequest) []domain.LeaveRequest {
	out := make([]domain.LeaveRequest, len(items))
	for i, l := range items {
		out[i] = NormalizeLeaveRequest(l)
	}
	return out
}
