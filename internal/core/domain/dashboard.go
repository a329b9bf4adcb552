package domain

// Section identifies which result panel the HR dashboard is showing.
type Section string

const (
	SectionIdle          Section = "idle"
	SectionEmployee      Section = "showing-employee"
	SectionProjects      Section = "showing-projects"
	SectionPendingLeaves Section = "showing-pending-leaves"
)

// DashboardState is the per-session HR dashboard state machine. The three
// result slots are mutually exclusive: a successful search fills exactly
// one slot and clears the others. A failed or empty search returns the
// dashboard to idle so no stale result is ever displayed.
type DashboardState struct {
	Section       Section            `json:"section"`
	Employee      *EmployeeViewModel `json:"employee,omitempty"`
	Projects      []Project          `json:"projects,omitempty"`
	PendingLeaves []LeaveRequest     `json:"pendingLeaves,omitempty"`
}

// NewDashboardState returns the initial idle state.
func NewDashboardState() DashboardState {
	return DashboardState{Section: SectionIdle}
}

// ShowEmployee records a successful employee search.
func (d *DashboardState) ShowEmployee(vm EmployeeViewModel) {
	d.clear()
	d.Section = SectionEmployee
	d.Employee = &vm
}

// ShowProjects records a successful project search. The slice may be empty;
// an empty project listing is still a result, not a failure.
func (d *DashboardState) ShowProjects(projects []Project) {
	d.clear()
	d.Section = SectionProjects
	d.Projects = projects
}

// ShowPendingLeaves records the result of the pending-leaves action. Entries
// are kept exactly as received; the backend pre-filters by status and the
// dashboard never re-filters.
func (d *DashboardState) ShowPendingLeaves(leaves []LeaveRequest) {
	d.clear()
	d.Section = SectionPendingLeaves
	d.PendingLeaves = leaves
}

// Reset returns the dashboard to idle, discarding any displayed result.
// Called after a failed search so previous results do not linger.
func (d *DashboardState) Reset() {
	d.clear()
	d.Section = SectionIdle
}

func (d *DashboardState) clear() {
	d.Employee = nil
	d.Projects = nil
	d.PendingLeaves = nil
}
